package fusion

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kumr192/oraclearmcp001/internal/domain"
)

// Query describes one upstream fetch: optional equality filters plus the
// pagination window. Filters are joined into the single `q` parameter the
// Fusion REST API expects; values are forwarded verbatim because the upstream
// grammar is value-only equality and performs no evaluation.
type Query struct {
	// CustomerAccountID filters by the owning customer account.
	CustomerAccountID string
	// DocumentField names the upstream field a DocumentNumber filter matches
	// against (TransactionNumber for invoices, ReceiptNumber for receipts).
	DocumentField string
	// DocumentNumber filters by invoice or receipt number.
	DocumentNumber string
	// Page is the pagination window, clamped before use.
	Page domain.Page
}

// filterSeparator joins `Field=Value` fragments in the `q` parameter.
const filterSeparator = ";"

// Values renders the query as upstream request parameters. The `q` parameter
// is only emitted when at least one filter is set; the customer filter always
// precedes the document filter.
func (q Query) Values() url.Values {
	page := q.Page.Normalize()

	params := url.Values{}
	params.Set("limit", strconv.Itoa(page.Limit))
	params.Set("offset", strconv.Itoa(page.Offset))

	var filters []string
	if q.CustomerAccountID != "" {
		filters = append(filters, "CustomerAccountId="+q.CustomerAccountID)
	}
	if q.DocumentNumber != "" && q.DocumentField != "" {
		filters = append(filters, q.DocumentField+"="+q.DocumentNumber)
	}
	if len(filters) > 0 {
		params.Set("q", strings.Join(filters, filterSeparator))
	}

	return params
}
