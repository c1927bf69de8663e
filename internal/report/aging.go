package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kumr192/oraclearmcp001/internal/domain"
)

// AgingSummary is the bucketed breakdown of open invoices by days past due
// as of a reference date.
type AgingSummary struct {
	Buckets           domain.AgingBuckets  `json:"aging_buckets"`
	TotalOutstanding  float64              `json:"total_outstanding"`
	TotalOpenInvoices int                  `json:"total_open_invoices"`
	Invoices          []domain.AgedInvoice `json:"invoices"`
}

// bucket indices into the accumulation arrays, ordered youngest to oldest.
const (
	bucketCurrent = iota
	bucket1To30
	bucket31To60
	bucket61To90
	bucketOver90
	bucketCount
)

// ClassifyAging buckets open invoices by how many whole days past due they
// are on the reference date.
//
// An invoice is excluded entirely when its balance due is nil or
// non-positive, when it has no due date, or when the due date does not parse
// as a calendar date. Exclusion is silent: a malformed record never fails
// the whole classification and is never defaulted into "current".
//
// Bucket boundaries are inclusive on the upper end: exactly 30 days past due
// is still 1_30. Bucketing uses the signed day difference; the reported
// days_past_due clamps at zero for invoices not yet due.
//
// The detail list is sorted descending by days past due; invoices with equal
// age keep their original relative order.
func ClassifyAging(invoices []domain.Invoice, reference time.Time) AgingSummary {
	refDate := toUTCDate(reference)

	var counts [bucketCount]int
	var amounts [bucketCount]decimal.Decimal
	aged := []domain.AgedInvoice{}

	for _, inv := range invoices {
		if !inv.Open() {
			continue
		}
		if inv.DueDate == nil {
			continue
		}
		due, ok := parseDate(*inv.DueDate)
		if !ok {
			continue
		}

		days := int(refDate.Sub(toUTCDate(due)) / (24 * time.Hour))

		var idx int
		switch {
		case days <= 0:
			idx = bucketCurrent
		case days <= 30:
			idx = bucket1To30
		case days <= 60:
			idx = bucket31To60
		case days <= 90:
			idx = bucket61To90
		default:
			idx = bucketOver90
		}

		counts[idx]++
		amounts[idx] = amounts[idx].Add(decimal.NewFromFloat(*inv.BalanceDue))

		reported := days
		if reported < 0 {
			reported = 0
		}
		aged = append(aged, domain.AgedInvoice{Invoice: inv, DaysPastDue: reported})
	}

	sort.SliceStable(aged, func(i, j int) bool {
		return aged[i].DaysPastDue > aged[j].DaysPastDue
	})

	var grand decimal.Decimal
	totalOpen := 0
	for i := 0; i < bucketCount; i++ {
		grand = grand.Add(amounts[i])
		totalOpen += counts[i]
	}

	return AgingSummary{
		Buckets: domain.AgingBuckets{
			Current:    domain.BucketTotal{Count: counts[bucketCurrent], Amount: round2(amounts[bucketCurrent])},
			Days1To30:  domain.BucketTotal{Count: counts[bucket1To30], Amount: round2(amounts[bucket1To30])},
			Days31To60: domain.BucketTotal{Count: counts[bucket31To60], Amount: round2(amounts[bucket31To60])},
			Days61To90: domain.BucketTotal{Count: counts[bucket61To90], Amount: round2(amounts[bucket61To90])},
			Over90:     domain.BucketTotal{Count: counts[bucketOver90], Amount: round2(amounts[bucketOver90])},
		},
		TotalOutstanding:  round2(grand),
		TotalOpenInvoices: totalOpen,
		Invoices:          aged,
	}
}

// parseDate accepts the two date shapes Fusion emits: a plain calendar date
// and an RFC3339 timestamp.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// toUTCDate truncates a timestamp to its UTC calendar date so day arithmetic
// never shifts across DST or zone offsets.
func toUTCDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
