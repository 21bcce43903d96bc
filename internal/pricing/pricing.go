// Package pricing computes line and invoice amounts for a sale. Everything
// here is pure: no rounding happens mid-computation, callers round final
// monetary values with Round2 at output time.
package pricing

import "math"

// LineAmounts is the result of pricing a single cart line.
type LineAmounts struct {
	Subtotal       float64 // unit price * quantity
	DiscountAmount float64
	TaxAmount      float64
	Total          float64
}

// PriceLine applies the item-level discount, then tax on the discounted
// value. Inputs are pre-validated non-negative numbers.
func PriceLine(unitPrice float64, quantity int, discountPercent, taxPercent float64) LineAmounts {
	subtotal := unitPrice * float64(quantity)
	discount := subtotal * discountPercent / 100
	tax := (subtotal - discount) * taxPercent / 100

	return LineAmounts{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		Total:          subtotal - discount + tax,
	}
}

// InvoiceTotals aggregates line amounts plus a flat bill discount.
type InvoiceTotals struct {
	Subtotal          float64
	TotalItemDiscount float64
	TotalTax          float64
	FlatDiscount      float64
	GrandTotal        float64
}

// Accumulate folds one priced line into the running totals.
func (t *InvoiceTotals) Accumulate(line LineAmounts) {
	t.Subtotal += line.Subtotal
	t.TotalItemDiscount += line.DiscountAmount
	t.TotalTax += line.TaxAmount
}

// Finalize applies the flat discount and clamps the grand total at zero so
// an oversized discount can never produce a negative invoice.
func (t *InvoiceTotals) Finalize(flatDiscount float64) {
	t.FlatDiscount = flatDiscount
	t.GrandTotal = math.Max(0, t.Subtotal-t.TotalItemDiscount-flatDiscount+t.TotalTax)
}

// Paid reports whether the paid amount settles the grand total.
func (t *InvoiceTotals) Paid(paidAmount float64) bool {
	return paidAmount >= t.GrandTotal
}

// Round2 rounds to the currency's minor unit (2 decimals). Applied only at
// output boundaries, never between pricing steps.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
