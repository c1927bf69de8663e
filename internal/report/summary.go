package report

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kumr192/oraclearmcp001/internal/domain"
	"github.com/kumr192/oraclearmcp001/internal/fusion"
)

// RecordSource is the slice of the upstream client the summary composer
// depends on.
type RecordSource interface {
	Invoices(ctx context.Context, q fusion.Query) ([]domain.Invoice, bool, error)
	Receipts(ctx context.Context, q fusion.Query) ([]domain.Receipt, bool, error)
}

// CustomerRef identifies the customer a summary was composed for.
type CustomerRef struct {
	CustomerAccountID string  `json:"customer_account_id"`
	CustomerName      *string `json:"customer_name"`
}

// SummaryTotals are the derived figures of a customer AR summary.
type SummaryTotals struct {
	TotalInvoiced      float64 `json:"total_invoiced"`
	TotalPaid          float64 `json:"total_paid"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	InvoiceCount       int     `json:"invoice_count"`
	ReceiptCount       int     `json:"receipt_count"`
	OpenInvoiceCount   int     `json:"open_invoice_count"`
}

// CustomerSummary is the full per-customer report: derived totals plus the
// underlying record lists. Composed per request, never persisted.
type CustomerSummary struct {
	Customer CustomerRef      `json:"customer"`
	Summary  SummaryTotals    `json:"summary"`
	Invoices []domain.Invoice `json:"invoices"`
	Receipts []domain.Receipt `json:"receipts"`
}

// ComposeCustomerSummary fetches a customer's invoices and receipts and
// merges them into one report. The two fetches have no ordering dependency
// and run concurrently; failure of either fails the whole summary, there is
// no partial result.
//
// No join is performed between the two sets: total paid comes from receipts,
// outstanding balance from invoice balances, independently.
func ComposeCustomerSummary(ctx context.Context, src RecordSource, customerAccountID string) (*CustomerSummary, error) {
	full := domain.Page{Limit: domain.MaxPageLimit}

	var (
		invoices []domain.Invoice
		receipts []domain.Receipt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, _, err = src.Invoices(gctx, fusion.Query{
			CustomerAccountID: customerAccountID,
			Page:              full,
		})
		if err != nil {
			return fmt.Errorf("fetch invoices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		receipts, _, err = src.Receipts(gctx, fusion.Query{
			CustomerAccountID: customerAccountID,
			Page:              full,
		})
		if err != nil {
			return fmt.Errorf("fetch receipts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var invoiced, outstanding, paid Accumulator
	openCount := 0
	for _, inv := range invoices {
		invoiced.Add(inv.Amount)
		outstanding.Add(inv.BalanceDue)
		if inv.Open() {
			openCount++
		}
	}
	for _, r := range receipts {
		paid.Add(r.Amount)
	}

	// Name resolution order is contract: first invoice, then first receipt,
	// then null.
	var name *string
	switch {
	case len(invoices) > 0:
		name = invoices[0].CustomerName
	case len(receipts) > 0:
		name = receipts[0].CustomerName
	}

	return &CustomerSummary{
		Customer: CustomerRef{
			CustomerAccountID: customerAccountID,
			CustomerName:      name,
		},
		Summary: SummaryTotals{
			TotalInvoiced:      invoiced.Total(),
			TotalPaid:          paid.Total(),
			OutstandingBalance: outstanding.Total(),
			InvoiceCount:       len(invoices),
			ReceiptCount:       len(receipts),
			OpenInvoiceCount:   openCount,
		},
		Invoices: invoices,
		Receipts: receipts,
	}, nil
}
