package fusion

import "github.com/kumr192/oraclearmcp001/internal/domain"

// Raw is one undecoded upstream record: field name to arbitrary JSON value.
type Raw = map[string]any

// stringField reads a string-valued source field, nil when absent or not a
// string. Projection never errors on a malformed field; downstream consumers
// see null and decide for themselves.
func stringField(item Raw, key string) *string {
	if s, ok := item[key].(string); ok {
		return &s
	}
	return nil
}

// numberField reads a numeric source field. JSON numbers decode as float64;
// anything else (including a missing field) projects to nil, never to zero.
func numberField(item Raw, key string) *float64 {
	if f, ok := item[key].(float64); ok {
		return &f
	}
	return nil
}

// ProjectInvoice maps one raw receivablesInvoices item into the output schema.
func ProjectInvoice(item Raw) domain.Invoice {
	return domain.Invoice{
		InvoiceID:         item["CustomerTrxId"],
		InvoiceNumber:     item["TransactionNumber"],
		CustomerAccountID: item["CustomerAccountId"],
		CustomerName:      stringField(item, "BillToCustomerName"),
		TransactionDate:   stringField(item, "TransactionDate"),
		DueDate:           stringField(item, "DueDate"),
		Amount:            numberField(item, "EnteredAmount"),
		BalanceDue:        numberField(item, "BalanceDue"),
		Currency:          stringField(item, "InvoiceCurrencyCode"),
		Status:            stringField(item, "Status"),
		BusinessUnit:      stringField(item, "BusinessUnit"),
	}
}

// ProjectReceipt maps one raw standardReceipts item into the output schema.
func ProjectReceipt(item Raw) domain.Receipt {
	return domain.Receipt{
		ReceiptID:         item["StandardReceiptId"],
		ReceiptNumber:     item["ReceiptNumber"],
		CustomerAccountID: item["CustomerAccountId"],
		CustomerName:      stringField(item, "CustomerName"),
		ReceiptDate:       stringField(item, "ReceiptDate"),
		Amount:            numberField(item, "Amount"),
		Currency:          stringField(item, "CurrencyCode"),
		Status:            stringField(item, "Status"),
		PaymentMethod:     stringField(item, "ReceiptMethod"),
		BusinessUnit:      stringField(item, "BusinessUnit"),
	}
}

// ProjectActivity maps one raw customer account activity item.
func ProjectActivity(item Raw) domain.Activity {
	return domain.Activity{
		CustomerAccountID: item["CustomerAccountId"],
		CustomerName:      stringField(item, "CustomerName"),
		TransactionNumber: item["TransactionNumber"],
		ActivityType:      stringField(item, "ActivityType"),
		ActivityDate:      stringField(item, "ActivityDate"),
		Amount:            numberField(item, "Amount"),
		Currency:          stringField(item, "CurrencyCode"),
	}
}

// ProjectInvoices projects a full page of raw invoice items in order.
func ProjectInvoices(items []Raw) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(items))
	for _, item := range items {
		out = append(out, ProjectInvoice(item))
	}
	return out
}

// ProjectReceipts projects a full page of raw receipt items in order.
func ProjectReceipts(items []Raw) []domain.Receipt {
	out := make([]domain.Receipt, 0, len(items))
	for _, item := range items {
		out = append(out, ProjectReceipt(item))
	}
	return out
}

// ProjectActivities projects a full page of raw activity items in order.
func ProjectActivities(items []Raw) []domain.Activity {
	out := make([]domain.Activity, 0, len(items))
	for _, item := range items {
		out = append(out, ProjectActivity(item))
	}
	return out
}
