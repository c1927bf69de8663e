package domain

// Activity is the stable projection of one customer account activity row.
type Activity struct {
	CustomerAccountID any      `json:"customer_account_id"`
	CustomerName      *string  `json:"customer_name"`
	TransactionNumber any      `json:"transaction_number"`
	ActivityType      *string  `json:"activity_type"`
	ActivityDate      *string  `json:"activity_date"`
	Amount            *float64 `json:"amount"`
	Currency          *string  `json:"currency"`
}
