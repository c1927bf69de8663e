// Package report computes the derived financial views served by the tool
// surface: listing totals, aging classification, and per-customer summaries.
// Everything here is deterministic given its inputs and holds no state
// across calls.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/kumr192/oraclearmcp001/internal/domain"
)

// Accumulator sums nullable monetary values. Accumulation runs at full
// decimal precision; rounding to 2 places happens only when the total is
// read, so large record sets never compound rounding error.
//
// A nil value contributes zero to the sum. The projected record keeps its
// null, so "unknown" and "zero" stay distinguishable everywhere except
// inside a total. That asymmetry is contract.
type Accumulator struct {
	total decimal.Decimal
}

// Add folds one nullable amount into the running total.
func (a *Accumulator) Add(v *float64) {
	if v == nil {
		return
	}
	a.total = a.total.Add(decimal.NewFromFloat(*v))
}

// Total returns the accumulated sum rounded to 2 decimal places. An empty
// accumulator totals 0.
func (a *Accumulator) Total() float64 {
	return round2(a.total)
}

// round2 collapses a full-precision decimal to the 2-place output form.
func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// InvoiceTotals computes the listing aggregates for a page of invoices:
// record count, summed entered amount, and summed balance due.
func InvoiceTotals(invoices []domain.Invoice) (count int, totalAmount, totalBalanceDue float64) {
	var amount, balance Accumulator
	for _, inv := range invoices {
		amount.Add(inv.Amount)
		balance.Add(inv.BalanceDue)
	}
	return len(invoices), amount.Total(), balance.Total()
}

// ReceiptTotals computes the listing aggregates for a page of receipts:
// record count and summed collected amount.
func ReceiptTotals(receipts []domain.Receipt) (count int, totalCollected float64) {
	var collected Accumulator
	for _, r := range receipts {
		collected.Add(r.Amount)
	}
	return len(receipts), collected.Total()
}
