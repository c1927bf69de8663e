package domain

// Receipt is the stable projection of one upstream standard receipt.
type Receipt struct {
	ReceiptID         any      `json:"receipt_id"`
	ReceiptNumber     any      `json:"receipt_number"`
	CustomerAccountID any      `json:"customer_account_id"`
	CustomerName      *string  `json:"customer_name"`
	ReceiptDate       *string  `json:"receipt_date"`
	Amount            *float64 `json:"amount"`
	Currency          *string  `json:"currency"`
	Status            *string  `json:"status"`
	PaymentMethod     *string  `json:"payment_method"`
	BusinessUnit      *string  `json:"business_unit"`
}
