// Package cache holds the Redis read-through cache for committed invoices.
// Invoices are append-only, so cached copies can never go stale.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go-pos-backend/internal/model"

	"github.com/redis/go-redis/v9"
)

const invoiceTTL = time.Hour

// InitRedis connects using REDIS_ADDR (empty disables caching entirely).
func InitRedis() (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

type InvoiceCache struct {
	client *redis.Client
}

// NewInvoiceCache wraps a Redis client; a nil client yields a cache where
// every lookup misses and every store is a no-op.
func NewInvoiceCache(client *redis.Client) *InvoiceCache {
	return &InvoiceCache{client: client}
}

func (c *InvoiceCache) Get(ctx context.Context, id uint) (*model.Invoice, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, invoiceKey(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var invoice model.Invoice
	if err := json.Unmarshal(data, &invoice); err != nil {
		return nil, false
	}
	return &invoice, true
}

func (c *InvoiceCache) Set(ctx context.Context, invoice *model.Invoice) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(invoice)
	if err != nil {
		return
	}
	// Best effort: a failed store just means the next read hits Postgres.
	c.client.Set(ctx, invoiceKey(invoice.ID), data, invoiceTTL)
}

func invoiceKey(id uint) string {
	return fmt.Sprintf("invoice:%d", id)
}
