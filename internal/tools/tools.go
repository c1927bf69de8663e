// Package tools is the MCP surface of the server: it declares the tool
// catalog, decodes typed inputs, builds a request-scoped upstream client per
// call, and serializes either a complete success payload or a complete
// normalized error payload. No partial results leave this package.
package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kumr192/oraclearmcp001/internal/domain"
	"github.com/kumr192/oraclearmcp001/internal/fusion"
	"github.com/kumr192/oraclearmcp001/internal/report"
)

// Settings carries the process-level knobs the tool handlers need.
// Credentials are absent: they arrive inside each call.
type Settings struct {
	// RequestTimeout bounds every reporting fetch to the upstream.
	RequestTimeout time.Duration
	// ConnectTimeout bounds the lighter connection-test probe.
	ConnectTimeout time.Duration
	// InsecureSkipVerify disables upstream TLS verification.
	InsecureSkipVerify bool
}

// Toolset groups the tool handlers and their shared dependencies.
type Toolset struct {
	settings Settings
	log      *zap.Logger
}

// Register adds every AR reporting tool to the MCP server.
func Register(server *mcp.Server, settings Settings, log *zap.Logger) {
	t := &Toolset{settings: settings, log: log}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "oracle_ar_test_connection",
		Description: "Test connectivity and credentials against Oracle Fusion. Performs a minimal authenticated read and reports whether the credentials are valid.",
	}, t.testConnection)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "oracle_ar_list_invoices",
		Description: "List AR invoices from Oracle Fusion with optional customer and invoice-number filters. Returns the projected invoices plus count, total_amount and total_balance_due for the page.",
	}, t.listInvoices)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "oracle_ar_list_receipts",
		Description: "List payment receipts from Oracle Fusion with optional customer and receipt-number filters. Returns the projected receipts plus count and total_collected for the page.",
	}, t.listReceipts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "oracle_ar_list_customer_activities",
		Description: "List customer account activities from Oracle Fusion with optional customer and transaction-number filters.",
	}, t.listActivities)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "oracle_ar_get_customer_summary",
		Description: "Build an AR summary for one customer: total invoiced, total paid, outstanding balance and open invoice count, with the underlying invoice and receipt lists.",
	}, t.customerSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "oracle_ar_get_aging_summary",
		Description: "Classify open invoices into aging buckets (current, 1-30, 31-60, 61-90, over 90 days past due) as of today, with per-bucket counts and amounts and a detail list sorted oldest first.",
	}, t.agingSummary)
}

// client builds the request-scoped upstream client for one tool call.
func (t *Toolset) client(conn ConnectionInput, timeout time.Duration) *fusion.Client {
	return fusion.NewClient(conn.BaseURL, fusion.Credentials{
		Username: conn.Username,
		Password: conn.Password,
	}, fusion.Options{
		Timeout:            timeout,
		InsecureSkipVerify: t.settings.InsecureSkipVerify,
	}, t.log)
}

// jsonResult wraps a success payload as the tool result body.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Should be unreachable: every payload type here marshals cleanly.
		b = []byte(`{"error":"unexpected","message":"failed to encode result"}`)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}
}

// errorResult normalizes a fetch failure into the uniform error payload.
// The payload is the entire result; no data fields accompany it.
func (t *Toolset) errorResult(tool string, err error) *mcp.CallToolResult {
	payload := NormalizeError(err)
	t.log.Warn("tool call failed",
		zap.String("tool", tool),
		zap.String("code", payload.Error),
		zap.Error(err))
	b, _ := json.MarshalIndent(payload, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
		IsError: true,
	}
}

// invalidResult reports a malformed input without touching the upstream.
func invalidResult(message string) *mcp.CallToolResult {
	b, _ := json.MarshalIndent(ErrorPayload{Error: CodeUnexpected, Message: message}, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
		IsError: true,
	}
}

type connectionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (t *Toolset) testConnection(ctx context.Context, _ *mcp.CallToolRequest, in ConnectionInput) (*mcp.CallToolResult, any, error) {
	in.trim()
	client := t.client(in, t.settings.ConnectTimeout)
	if err := client.Ping(ctx); err != nil {
		return t.errorResult("oracle_ar_test_connection", err), nil, nil
	}
	return jsonResult(connectionResult{Status: "connected", Message: "Credentials valid"}), nil, nil
}

type invoiceListResult struct {
	Invoices        []domain.Invoice `json:"invoices"`
	Count           int              `json:"count"`
	TotalAmount     float64          `json:"total_amount"`
	TotalBalanceDue float64          `json:"total_balance_due"`
	HasMore         bool             `json:"has_more"`
	Offset          int              `json:"offset"`
	Limit           int              `json:"limit"`
}

func (t *Toolset) listInvoices(ctx context.Context, _ *mcp.CallToolRequest, in InvoiceLookupInput) (*mcp.CallToolResult, any, error) {
	in.trim()
	page := domain.Page{Limit: in.Limit, Offset: in.Offset}.Normalize()

	client := t.client(in.ConnectionInput, t.settings.RequestTimeout)
	invoices, hasMore, err := client.Invoices(ctx, fusion.Query{
		CustomerAccountID: in.CustomerAccountID,
		DocumentField:     "TransactionNumber",
		DocumentNumber:    in.InvoiceNumber,
		Page:              page,
	})
	if err != nil {
		return t.errorResult("oracle_ar_list_invoices", err), nil, nil
	}

	count, totalAmount, totalBalance := report.InvoiceTotals(invoices)
	return jsonResult(invoiceListResult{
		Invoices:        invoices,
		Count:           count,
		TotalAmount:     totalAmount,
		TotalBalanceDue: totalBalance,
		HasMore:         hasMore,
		Offset:          page.Offset,
		Limit:           page.Limit,
	}), nil, nil
}

type receiptListResult struct {
	Receipts       []domain.Receipt `json:"receipts"`
	Count          int              `json:"count"`
	TotalCollected float64          `json:"total_collected"`
	HasMore        bool             `json:"has_more"`
	Offset         int              `json:"offset"`
	Limit          int              `json:"limit"`
}

func (t *Toolset) listReceipts(ctx context.Context, _ *mcp.CallToolRequest, in ReceiptLookupInput) (*mcp.CallToolResult, any, error) {
	in.trim()
	page := domain.Page{Limit: in.Limit, Offset: in.Offset}.Normalize()

	client := t.client(in.ConnectionInput, t.settings.RequestTimeout)
	receipts, hasMore, err := client.Receipts(ctx, fusion.Query{
		CustomerAccountID: in.CustomerAccountID,
		DocumentField:     "ReceiptNumber",
		DocumentNumber:    in.ReceiptNumber,
		Page:              page,
	})
	if err != nil {
		return t.errorResult("oracle_ar_list_receipts", err), nil, nil
	}

	count, totalCollected := report.ReceiptTotals(receipts)
	return jsonResult(receiptListResult{
		Receipts:       receipts,
		Count:          count,
		TotalCollected: totalCollected,
		HasMore:        hasMore,
		Offset:         page.Offset,
		Limit:          page.Limit,
	}), nil, nil
}

type activityListResult struct {
	Activities []domain.Activity `json:"activities"`
	Count      int               `json:"count"`
	HasMore    bool              `json:"has_more"`
	Offset     int               `json:"offset"`
	Limit      int               `json:"limit"`
}

func (t *Toolset) listActivities(ctx context.Context, _ *mcp.CallToolRequest, in ActivityLookupInput) (*mcp.CallToolResult, any, error) {
	in.trim()
	page := domain.Page{Limit: in.Limit, Offset: in.Offset}.Normalize()

	client := t.client(in.ConnectionInput, t.settings.RequestTimeout)
	activities, hasMore, err := client.Activities(ctx, fusion.Query{
		CustomerAccountID: in.CustomerAccountID,
		DocumentField:     "TransactionNumber",
		DocumentNumber:    in.TransactionNumber,
		Page:              page,
	})
	if err != nil {
		return t.errorResult("oracle_ar_list_customer_activities", err), nil, nil
	}

	return jsonResult(activityListResult{
		Activities: activities,
		Count:      len(activities),
		HasMore:    hasMore,
		Offset:     page.Offset,
		Limit:      page.Limit,
	}), nil, nil
}

func (t *Toolset) customerSummary(ctx context.Context, _ *mcp.CallToolRequest, in CustomerSummaryInput) (*mcp.CallToolResult, any, error) {
	in.trim()
	if in.CustomerAccountID == "" {
		return invalidResult("customer_account_id is required"), nil, nil
	}

	client := t.client(in.ConnectionInput, t.settings.RequestTimeout)
	summary, err := report.ComposeCustomerSummary(ctx, client, in.CustomerAccountID)
	if err != nil {
		return t.errorResult("oracle_ar_get_customer_summary", err), nil, nil
	}
	return jsonResult(summary), nil, nil
}

type agingResult struct {
	report.AgingSummary
	HasMore bool `json:"has_more"`
}

func (t *Toolset) agingSummary(ctx context.Context, _ *mcp.CallToolRequest, in AgingInput) (*mcp.CallToolResult, any, error) {
	in.trim()
	page := domain.Page{Limit: in.Limit, Offset: in.Offset}.Normalize()

	client := t.client(in.ConnectionInput, t.settings.RequestTimeout)
	invoices, hasMore, err := client.Invoices(ctx, fusion.Query{
		CustomerAccountID: in.CustomerAccountID,
		Page:              page,
	})
	if err != nil {
		return t.errorResult("oracle_ar_get_aging_summary", err), nil, nil
	}

	summary := report.ClassifyAging(invoices, time.Now())
	t.log.Debug("aging classified",
		zap.Int("fetched", len(invoices)),
		zap.Int("open", summary.TotalOpenInvoices))
	return jsonResult(agingResult{AgingSummary: summary, HasMore: hasMore}), nil, nil
}
