package codegen

import (
	"errors"
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		lastCode string
		width    int
		want     string
		wantErr  bool
	}{
		{name: "first category code", prefix: CategoryPrefix, lastCode: "", width: CategoryWidth, want: "CAT0001"},
		{name: "increment category code", prefix: CategoryPrefix, lastCode: "CAT0007", width: CategoryWidth, want: "CAT0008"},
		{name: "first item code", prefix: ItemPrefix, lastCode: "", width: ItemWidth, want: "ITM00001"},
		{name: "increment item code", prefix: ItemPrefix, lastCode: "ITM00041", width: ItemWidth, want: "ITM00042"},
		{name: "width overflow keeps counting", prefix: CategoryPrefix, lastCode: "CAT9999", width: CategoryWidth, want: "CAT10000"},
		{name: "garbage suffix fails loudly", prefix: ItemPrefix, lastCode: "ITMabc", wantErr: true},
		{name: "missing prefix fails loudly", prefix: ItemPrefix, lastCode: "00042", wantErr: true},
		{name: "zero suffix fails loudly", prefix: CategoryPrefix, lastCode: "CAT0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.prefix, tt.lastCode, tt.width)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Next(%q, %q) = %q, want error", tt.prefix, tt.lastCode, got)
				}
				var parseErr *ErrUnparsableCode
				if !errors.As(err, &parseErr) {
					t.Fatalf("error type = %T, want *ErrUnparsableCode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Next(%q, %q) error: %v", tt.prefix, tt.lastCode, err)
			}
			if got != tt.want {
				t.Errorf("Next(%q, %q) = %q, want %q", tt.prefix, tt.lastCode, got, tt.want)
			}
		})
	}
}

// A corrupt last code must never silently restart the sequence: that would
// hand out duplicate codes under concurrent use.
func TestNextNeverFallsBackToSeed(t *testing.T) {
	got, err := Next(ItemPrefix, "not-a-code", ItemWidth)
	if err == nil {
		t.Fatalf("Next returned %q for a corrupt last code, want error", got)
	}
	if got != "" {
		t.Errorf("Next returned a code alongside the error: %q", got)
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	tests := []struct {
		id   uint
		want string
	}{
		{1, "INV-000001"},
		{2, "INV-000002"},
		{999999, "INV-999999"},
		{1000000, "INV-1000000"},
	}
	for _, tt := range tests {
		if got := FormatInvoiceNumber(tt.id); got != tt.want {
			t.Errorf("FormatInvoiceNumber(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
