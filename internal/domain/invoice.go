package domain

// Invoice is the stable projection of one upstream receivables invoice.
//
// Every field is a pointer (or untyped passthrough for identifiers) so that a
// field missing from the upstream record stays null in output instead of
// collapsing to a zero value. Aggregation treats nil amounts as zero, but
// the projected record itself keeps the distinction.
type Invoice struct {
	InvoiceID         any      `json:"invoice_id"`
	InvoiceNumber     any      `json:"invoice_number"`
	CustomerAccountID any      `json:"customer_account_id"`
	CustomerName      *string  `json:"customer_name"`
	TransactionDate   *string  `json:"transaction_date"`
	DueDate           *string  `json:"due_date"`
	Amount            *float64 `json:"amount"`
	BalanceDue        *float64 `json:"balance_due"`
	Currency          *string  `json:"currency"`
	Status            *string  `json:"status"`
	BusinessUnit      *string  `json:"business_unit"`
}

// Open reports whether the invoice still carries a positive balance.
// A nil or non-positive balance means the invoice is closed or credited.
func (i Invoice) Open() bool {
	return i.BalanceDue != nil && *i.BalanceDue > 0
}
