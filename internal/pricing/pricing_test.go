package pricing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPriceLine(t *testing.T) {
	tests := []struct {
		name            string
		unitPrice       float64
		quantity        int
		discountPercent float64
		taxPercent      float64
		want            LineAmounts
	}{
		{
			name:      "discount then tax on discounted value",
			unitPrice: 100, quantity: 2, discountPercent: 10, taxPercent: 5,
			want: LineAmounts{Subtotal: 200, DiscountAmount: 20, TaxAmount: 9, Total: 189},
		},
		{
			name:      "no discount no tax",
			unitPrice: 50, quantity: 3,
			want: LineAmounts{Subtotal: 150, DiscountAmount: 0, TaxAmount: 0, Total: 150},
		},
		{
			name:      "full discount leaves nothing to tax",
			unitPrice: 80, quantity: 1, discountPercent: 100, taxPercent: 20,
			want: LineAmounts{Subtotal: 80, DiscountAmount: 80, TaxAmount: 0, Total: 0},
		},
		{
			name:      "tax only",
			unitPrice: 10, quantity: 4, taxPercent: 15,
			want: LineAmounts{Subtotal: 40, DiscountAmount: 0, TaxAmount: 6, Total: 46},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceLine(tt.unitPrice, tt.quantity, tt.discountPercent, tt.taxPercent)
			if !almostEqual(got.Subtotal, tt.want.Subtotal) ||
				!almostEqual(got.DiscountAmount, tt.want.DiscountAmount) ||
				!almostEqual(got.TaxAmount, tt.want.TaxAmount) ||
				!almostEqual(got.Total, tt.want.Total) {
				t.Errorf("PriceLine() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPriceLineIsPure(t *testing.T) {
	first := PriceLine(33.33, 7, 12.5, 8)
	second := PriceLine(33.33, 7, 12.5, 8)
	if first != second {
		t.Errorf("identical inputs produced different outputs: %+v vs %+v", first, second)
	}
}

func TestInvoiceTotals(t *testing.T) {
	var totals InvoiceTotals
	totals.Accumulate(PriceLine(100, 2, 10, 5)) // 200 / 20 / 9
	totals.Accumulate(PriceLine(50, 1, 0, 0))   // 50 / 0 / 0
	totals.Finalize(30)

	if !almostEqual(totals.Subtotal, 250) {
		t.Errorf("Subtotal = %v, want 250", totals.Subtotal)
	}
	if !almostEqual(totals.TotalItemDiscount, 20) {
		t.Errorf("TotalItemDiscount = %v, want 20", totals.TotalItemDiscount)
	}
	if !almostEqual(totals.TotalTax, 9) {
		t.Errorf("TotalTax = %v, want 9", totals.TotalTax)
	}

	// subtotal - item discount - flat discount + tax
	want := 250.0 - 20 - 30 + 9
	if !almostEqual(totals.GrandTotal, want) {
		t.Errorf("GrandTotal = %v, want %v", totals.GrandTotal, want)
	}
}

func TestInvoiceTotalsClampedAtZero(t *testing.T) {
	var totals InvoiceTotals
	totals.Accumulate(PriceLine(10, 1, 0, 0))
	totals.Finalize(500) // flat discount far exceeds the cart

	if totals.GrandTotal != 0 {
		t.Errorf("GrandTotal = %v, want 0 (clamped)", totals.GrandTotal)
	}
}

func TestPaid(t *testing.T) {
	var totals InvoiceTotals
	totals.Accumulate(PriceLine(100, 1, 0, 0))
	totals.Finalize(0)

	tests := []struct {
		name string
		paid float64
		want bool
	}{
		{"underpaid", 99.99, false},
		{"exact amount", 100, true},
		{"overpaid", 150, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totals.Paid(tt.paid); got != tt.want {
				t.Errorf("Paid(%v) = %v, want %v", tt.paid, got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{189.0, 189.0},
		{1.014, 1.01},
		{1.016, 1.02},
		{0.125, 0.13}, // exact binary value, half rounds away from zero
		{10.999, 11.0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
