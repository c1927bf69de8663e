package domain

// BucketTotal accumulates the open invoices that fell into one aging range.
type BucketTotal struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// AgingBuckets is the fixed five-bucket breakdown of open invoices by days
// past due. The struct field order pins the JSON key order, oldest band last.
type AgingBuckets struct {
	Current    BucketTotal `json:"current"`
	Days1To30  BucketTotal `json:"1_30"`
	Days31To60 BucketTotal `json:"31_60"`
	Days61To90 BucketTotal `json:"61_90"`
	Over90     BucketTotal `json:"over_90"`
}

// AgedInvoice is an open invoice annotated with its age for the aging detail
// list. DaysPastDue is clamped to zero for invoices not yet due.
type AgedInvoice struct {
	Invoice
	DaysPastDue int `json:"days_past_due"`
}
