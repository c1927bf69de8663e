package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumr192/oraclearmcp001/internal/domain"
)

// reference is a fixed classification date so bucket math never depends on
// when the suite runs.
var reference = time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC)

func sptr(s string) *string { return &s }

// openInvoice builds an open invoice due the given number of days before the
// reference date (negative = due in the future).
func openInvoice(number string, daysAgo int, balance float64) domain.Invoice {
	due := reference.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	return domain.Invoice{
		InvoiceNumber: number,
		DueDate:       &due,
		BalanceDue:    &balance,
	}
}

func TestClassifyAgingBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo int
		bucket  func(domain.AgingBuckets) domain.BucketTotal
	}{
		{"due today is current", 0, func(b domain.AgingBuckets) domain.BucketTotal { return b.Current }},
		{"due in the future is current", -14, func(b domain.AgingBuckets) domain.BucketTotal { return b.Current }},
		{"one day past due", 1, func(b domain.AgingBuckets) domain.BucketTotal { return b.Days1To30 }},
		{"exactly 30 days is 1_30", 30, func(b domain.AgingBuckets) domain.BucketTotal { return b.Days1To30 }},
		{"exactly 31 days is 31_60", 31, func(b domain.AgingBuckets) domain.BucketTotal { return b.Days31To60 }},
		{"exactly 60 days is 31_60", 60, func(b domain.AgingBuckets) domain.BucketTotal { return b.Days31To60 }},
		{"exactly 61 days is 61_90", 61, func(b domain.AgingBuckets) domain.BucketTotal { return b.Days61To90 }},
		{"exactly 90 days is 61_90", 90, func(b domain.AgingBuckets) domain.BucketTotal { return b.Days61To90 }},
		{"91 days is over_90", 91, func(b domain.AgingBuckets) domain.BucketTotal { return b.Over90 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ClassifyAging([]domain.Invoice{openInvoice("INV-1", tt.daysAgo, 100)}, reference)

			got := tt.bucket(summary.Buckets)
			assert.Equal(t, 1, got.Count)
			assert.Equal(t, float64(100), got.Amount)
			assert.Equal(t, 1, summary.TotalOpenInvoices)
		})
	}
}

func TestClassifyAgingSkipsClosedAndUnparseable(t *testing.T) {
	closed := openInvoice("INV-CLOSED", 40, 0)
	credited := openInvoice("INV-CREDIT", 40, -25)
	noBalance := domain.Invoice{InvoiceNumber: "INV-NOBAL", DueDate: sptr("2026-07-01")}
	noDue := domain.Invoice{InvoiceNumber: "INV-NODUE", BalanceDue: fptr(100)}
	badDate := domain.Invoice{InvoiceNumber: "INV-BADDATE", DueDate: sptr("31/07/2026"), BalanceDue: fptr(100)}
	open := openInvoice("INV-OPEN", 10, 75.25)

	summary := ClassifyAging([]domain.Invoice{closed, credited, noBalance, noDue, badDate, open}, reference)

	assert.Equal(t, 1, summary.TotalOpenInvoices, "only the parseable open invoice is classified")
	assert.Equal(t, 75.25, summary.TotalOutstanding)
	require.Len(t, summary.Invoices, 1)
	assert.Equal(t, "INV-OPEN", summary.Invoices[0].InvoiceNumber)
	// Unparseable dates are excluded, never defaulted into current.
	assert.Equal(t, 0, summary.Buckets.Current.Count)
}

func TestClassifyAgingPartitionsOpenInvoices(t *testing.T) {
	invoices := []domain.Invoice{
		openInvoice("A", -5, 10),
		openInvoice("B", 15, 20),
		openInvoice("C", 45, 30),
		openInvoice("D", 75, 40),
		openInvoice("E", 120, 50),
		openInvoice("F", 30, 60),
	}

	summary := ClassifyAging(invoices, reference)

	b := summary.Buckets
	total := b.Current.Count + b.Days1To30.Count + b.Days31To60.Count + b.Days61To90.Count + b.Over90.Count
	assert.Equal(t, len(invoices), total, "buckets partition the open set exactly")
	assert.Equal(t, len(invoices), summary.TotalOpenInvoices)
	assert.Equal(t, float64(210), summary.TotalOutstanding)
	assert.Equal(t, 2, b.Days1To30.Count, "15 and exactly 30 days both land in 1_30")
}

func TestClassifyAgingDetailSortedDescending(t *testing.T) {
	invoices := []domain.Invoice{
		openInvoice("YOUNG", 5, 10),
		openInvoice("OLD", 100, 10),
		openInvoice("MID", 45, 10),
	}

	summary := ClassifyAging(invoices, reference)

	require.Len(t, summary.Invoices, 3)
	assert.Equal(t, "OLD", summary.Invoices[0].InvoiceNumber)
	assert.Equal(t, "MID", summary.Invoices[1].InvoiceNumber)
	assert.Equal(t, "YOUNG", summary.Invoices[2].InvoiceNumber)
	assert.Equal(t, 100, summary.Invoices[0].DaysPastDue)
}

func TestClassifyAgingSortIsStable(t *testing.T) {
	invoices := []domain.Invoice{
		openInvoice("FIRST", 20, 10),
		openInvoice("SECOND", 20, 10),
		openInvoice("THIRD", 20, 10),
	}

	summary := ClassifyAging(invoices, reference)

	require.Len(t, summary.Invoices, 3)
	assert.Equal(t, "FIRST", summary.Invoices[0].InvoiceNumber)
	assert.Equal(t, "SECOND", summary.Invoices[1].InvoiceNumber)
	assert.Equal(t, "THIRD", summary.Invoices[2].InvoiceNumber)
}

func TestClassifyAgingClampsReportedDays(t *testing.T) {
	summary := ClassifyAging([]domain.Invoice{openInvoice("FUTURE", -30, 10)}, reference)

	require.Len(t, summary.Invoices, 1)
	assert.Equal(t, 0, summary.Invoices[0].DaysPastDue, "future due dates report zero days past due")
	assert.Equal(t, 1, summary.Buckets.Current.Count, "bucketing still used the signed value")
}

func TestClassifyAgingAcceptsTimestampDueDates(t *testing.T) {
	due := "2026-07-16T00:00:00Z" // 30 days before the reference date
	inv := domain.Invoice{InvoiceNumber: "INV-TS", DueDate: &due, BalanceDue: fptr(100)}

	summary := ClassifyAging([]domain.Invoice{inv}, reference)

	assert.Equal(t, 1, summary.Buckets.Days1To30.Count)
	require.Len(t, summary.Invoices, 1)
	assert.Equal(t, 30, summary.Invoices[0].DaysPastDue)
}

func TestClassifyAgingEmpty(t *testing.T) {
	summary := ClassifyAging(nil, reference)

	assert.Zero(t, summary.TotalOpenInvoices)
	assert.Zero(t, summary.TotalOutstanding)
	assert.NotNil(t, summary.Invoices, "detail list serializes as an empty array, not null")
}

func TestClassifyAgingBucketAmountsRounded(t *testing.T) {
	invoices := []domain.Invoice{
		openInvoice("A", 10, 10.004),
		openInvoice("B", 12, 10.004),
	}

	summary := ClassifyAging(invoices, reference)

	// 20.008 rounds once at output; per-invoice rounding would give 20.00
	// from two pre-rounded 10.00 values either way, but the grand total must
	// match the bucket.
	assert.Equal(t, 20.01, summary.Buckets.Days1To30.Amount)
	assert.Equal(t, 20.01, summary.TotalOutstanding)
}
