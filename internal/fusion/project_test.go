package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectInvoice(t *testing.T) {
	item := Raw{
		"CustomerTrxId":       float64(300100),
		"TransactionNumber":   "INV-1042",
		"CustomerAccountId":   float64(300000047888),
		"BillToCustomerName":  "Acme Industrial",
		"TransactionDate":     "2026-07-01",
		"DueDate":             "2026-07-31",
		"EnteredAmount":       float64(1250.5),
		"BalanceDue":          float64(250.5),
		"InvoiceCurrencyCode": "USD",
		"Status":              "Open",
		"BusinessUnit":        "US1 Business Unit",
	}

	inv := ProjectInvoice(item)

	require.NotNil(t, inv.CustomerName)
	assert.Equal(t, "Acme Industrial", *inv.CustomerName)
	require.NotNil(t, inv.DueDate)
	assert.Equal(t, "2026-07-31", *inv.DueDate)
	require.NotNil(t, inv.Amount)
	assert.Equal(t, 1250.5, *inv.Amount)
	require.NotNil(t, inv.BalanceDue)
	assert.Equal(t, 250.5, *inv.BalanceDue)
	assert.Equal(t, "INV-1042", inv.InvoiceNumber)
	assert.True(t, inv.Open())
}

func TestProjectInvoiceMissingFieldsStayNull(t *testing.T) {
	inv := ProjectInvoice(Raw{"TransactionNumber": "INV-1"})

	assert.Nil(t, inv.Amount, "missing amount must project as null, not zero")
	assert.Nil(t, inv.BalanceDue)
	assert.Nil(t, inv.DueDate)
	assert.Nil(t, inv.CustomerName)
	assert.Nil(t, inv.InvoiceID)
	assert.False(t, inv.Open())
}

func TestProjectInvoiceWrongTypesProjectAsNull(t *testing.T) {
	inv := ProjectInvoice(Raw{
		"EnteredAmount":      "not-a-number",
		"BillToCustomerName": float64(7),
	})

	assert.Nil(t, inv.Amount)
	assert.Nil(t, inv.CustomerName)
}

func TestProjectReceipt(t *testing.T) {
	r := ProjectReceipt(Raw{
		"StandardReceiptId": float64(9001),
		"ReceiptNumber":     "RCT-77",
		"CustomerName":      "Acme Industrial",
		"ReceiptDate":       "2026-08-01",
		"Amount":            float64(1000),
		"CurrencyCode":      "USD",
		"Status":            "Applied",
		"ReceiptMethod":     "Wire",
	})

	require.NotNil(t, r.Amount)
	assert.Equal(t, float64(1000), *r.Amount)
	require.NotNil(t, r.PaymentMethod)
	assert.Equal(t, "Wire", *r.PaymentMethod)
	assert.Equal(t, "RCT-77", r.ReceiptNumber)
}

func TestProjectActivities(t *testing.T) {
	items := []Raw{
		{"ActivityType": "Payment", "Amount": float64(100)},
		{"ActivityType": "Adjustment"},
	}

	activities := ProjectActivities(items)

	require.Len(t, activities, 2)
	require.NotNil(t, activities[0].ActivityType)
	assert.Equal(t, "Payment", *activities[0].ActivityType)
	assert.Nil(t, activities[1].Amount)
}

func TestProjectInvoicesEmptyPage(t *testing.T) {
	assert.Empty(t, ProjectInvoices(nil))
	assert.NotNil(t, ProjectInvoices(nil), "empty page projects to an empty list, not null")
}
