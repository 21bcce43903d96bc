// Package codegen issues sequential human-readable codes such as CAT0001,
// ITM00001 and INV-000001.
package codegen

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	CategoryPrefix = "CAT"
	CategoryWidth  = 4

	ItemPrefix = "ITM"
	ItemWidth  = 5

	invoicePrefix = "INV-"
	invoiceWidth  = 6
)

// ErrUnparsableCode means the last issued code's numeric suffix could not
// be read. Callers must treat this as fatal for the current operation:
// restarting the sequence at its seed would hand out duplicate codes.
type ErrUnparsableCode struct {
	Prefix   string
	LastCode string
}

func (e *ErrUnparsableCode) Error() string {
	return fmt.Sprintf("codegen: cannot parse numeric suffix of last %s code %q", e.Prefix, e.LastCode)
}

// Next returns the code after lastCode for the given prefix, zero-padded to
// width digits. An empty lastCode starts the sequence at 1.
func Next(prefix, lastCode string, width int) (string, error) {
	if lastCode == "" {
		return format(prefix, 1, width), nil
	}

	suffix := strings.TrimPrefix(lastCode, prefix)
	n, err := strconv.Atoi(suffix)
	if err != nil || suffix == lastCode || n < 1 {
		return "", &ErrUnparsableCode{Prefix: prefix, LastCode: lastCode}
	}

	return format(prefix, n+1, width), nil
}

// FormatInvoiceNumber derives the invoice number from the storage-assigned
// invoice row id. Unlike Next there is no previous code to parse: the
// auto-increment id is the sequence, which keeps concurrent issuance free
// of duplicates and gaps.
func FormatInvoiceNumber(invoiceID uint) string {
	return format(invoicePrefix, int(invoiceID), invoiceWidth)
}

func format(prefix string, n, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}
