package tools

import "strings"

// ConnectionInput is the per-call upstream connection block embedded in
// every tool input. Credentials live only for the call that carried them;
// nothing here is ever stored process-wide.
type ConnectionInput struct {
	BaseURL  string `json:"base_url" jsonschema:"Oracle Fusion base URL, e.g. https://your-pod.fa.oraclecloud.com"`
	Username string `json:"username" jsonschema:"Oracle Fusion username"`
	Password string `json:"password" jsonschema:"Oracle Fusion password"`
}

func (c *ConnectionInput) trim() {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.Username = strings.TrimSpace(c.Username)
	c.Password = strings.TrimSpace(c.Password)
}

// InvoiceLookupInput parameterizes oracle_ar_list_invoices.
type InvoiceLookupInput struct {
	ConnectionInput
	CustomerAccountID string `json:"customer_account_id,omitempty" jsonschema:"Filter by customer account ID"`
	InvoiceNumber     string `json:"invoice_number,omitempty" jsonschema:"Filter by invoice (transaction) number"`
	Limit             int    `json:"limit,omitempty" jsonschema:"Maximum records to return (1-500, default 25)"`
	Offset            int    `json:"offset,omitempty" jsonschema:"Number of records to skip"`
}

func (in *InvoiceLookupInput) trim() {
	in.ConnectionInput.trim()
	in.CustomerAccountID = strings.TrimSpace(in.CustomerAccountID)
	in.InvoiceNumber = strings.TrimSpace(in.InvoiceNumber)
}

// ReceiptLookupInput parameterizes oracle_ar_list_receipts.
type ReceiptLookupInput struct {
	ConnectionInput
	CustomerAccountID string `json:"customer_account_id,omitempty" jsonschema:"Filter by customer account ID"`
	ReceiptNumber     string `json:"receipt_number,omitempty" jsonschema:"Filter by receipt number"`
	Limit             int    `json:"limit,omitempty" jsonschema:"Maximum records to return (1-500, default 25)"`
	Offset            int    `json:"offset,omitempty" jsonschema:"Number of records to skip"`
}

func (in *ReceiptLookupInput) trim() {
	in.ConnectionInput.trim()
	in.CustomerAccountID = strings.TrimSpace(in.CustomerAccountID)
	in.ReceiptNumber = strings.TrimSpace(in.ReceiptNumber)
}

// ActivityLookupInput parameterizes oracle_ar_list_customer_activities.
type ActivityLookupInput struct {
	ConnectionInput
	CustomerAccountID string `json:"customer_account_id,omitempty" jsonschema:"Filter by customer account ID"`
	TransactionNumber string `json:"transaction_number,omitempty" jsonschema:"Filter by transaction number"`
	Limit             int    `json:"limit,omitempty" jsonschema:"Maximum records to return (1-500, default 25)"`
	Offset            int    `json:"offset,omitempty" jsonschema:"Number of records to skip"`
}

func (in *ActivityLookupInput) trim() {
	in.ConnectionInput.trim()
	in.CustomerAccountID = strings.TrimSpace(in.CustomerAccountID)
	in.TransactionNumber = strings.TrimSpace(in.TransactionNumber)
}

// CustomerSummaryInput parameterizes oracle_ar_get_customer_summary.
type CustomerSummaryInput struct {
	ConnectionInput
	CustomerAccountID string `json:"customer_account_id" jsonschema:"Customer account ID to summarize"`
}

func (in *CustomerSummaryInput) trim() {
	in.ConnectionInput.trim()
	in.CustomerAccountID = strings.TrimSpace(in.CustomerAccountID)
}

// AgingInput parameterizes oracle_ar_get_aging_summary.
type AgingInput struct {
	ConnectionInput
	CustomerAccountID string `json:"customer_account_id,omitempty" jsonschema:"Limit aging to one customer account"`
	Limit             int    `json:"limit,omitempty" jsonschema:"Maximum invoices to classify (1-500, default 25)"`
	Offset            int    `json:"offset,omitempty" jsonschema:"Number of invoices to skip"`
}

func (in *AgingInput) trim() {
	in.ConnectionInput.trim()
	in.CustomerAccountID = strings.TrimSpace(in.CustomerAccountID)
}
