package fusion

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kumr192/oraclearmcp001/internal/domain"
)

// basePath is the versioned Fusion REST resource root, shared by every
// endpoint this server reads from.
const basePath = "/fscmRestApi/resources/11.13.18.05/"

// Upstream resource names.
const (
	EndpointInvoices   = "receivablesInvoices"
	EndpointReceipts   = "standardReceipts"
	EndpointActivities = "receivablesCustomerAccountActivities"
)

// maxErrorBody caps how much of an upstream error response is retained.
const maxErrorBody = 4096

// Credentials is a per-call basic-auth pair. It is never stored beyond the
// request that carried it.
type Credentials struct {
	Username string
	Password string
}

// AuthorizationHeader encodes the credentials as an HTTP basic-auth value.
func (c Credentials) AuthorizationHeader() string {
	raw := c.Username + ":" + c.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}

// Options tunes the transport of a single client.
type Options struct {
	// Timeout bounds the full request round trip.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification. Fusion pods
	// behind self-signed chains are common enough that this defaults on in
	// the server config.
	InsecureSkipVerify bool
}

// Client performs GET requests against one Fusion instance with one set of
// credentials. A client lives for a single tool invocation.
type Client struct {
	baseURL string
	creds   Credentials
	httpc   *http.Client
	log     *zap.Logger
}

// NewClient builds a request-scoped client. baseURL is the Fusion host root;
// a trailing slash is tolerated.
func NewClient(baseURL string, creds Credentials, opts Options, log *zap.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	transport := &http.Transport{}
	if opts.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpc: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		log: log,
	}
}

// page is the envelope every Fusion collection resource responds with.
type page struct {
	Items   []Raw `json:"items"`
	HasMore bool  `json:"hasMore"`
}

// get fetches one page from an endpoint. Non-2xx statuses become a
// *StatusError carrying the (truncated) body; transport failures are wrapped
// and classified later by the error normalizer.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*page, error) {
	reqURL := c.baseURL + basePath + endpoint
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.creds.AuthorizationHeader())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warn("upstream returned error status",
			zap.String("endpoint", endpoint), zap.Int("status", resp.StatusCode))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var p page
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return &p, nil
}

// Invoices fetches and projects one page of receivables invoices.
func (c *Client) Invoices(ctx context.Context, q Query) ([]domain.Invoice, bool, error) {
	p, err := c.get(ctx, EndpointInvoices, q.Values())
	if err != nil {
		return nil, false, err
	}
	return ProjectInvoices(p.Items), p.HasMore, nil
}

// Receipts fetches and projects one page of standard receipts.
func (c *Client) Receipts(ctx context.Context, q Query) ([]domain.Receipt, bool, error) {
	p, err := c.get(ctx, EndpointReceipts, q.Values())
	if err != nil {
		return nil, false, err
	}
	return ProjectReceipts(p.Items), p.HasMore, nil
}

// Activities fetches and projects one page of customer account activities.
func (c *Client) Activities(ctx context.Context, q Query) ([]domain.Activity, bool, error) {
	p, err := c.get(ctx, EndpointActivities, q.Values())
	if err != nil {
		return nil, false, err
	}
	return ProjectActivities(p.Items), p.HasMore, nil
}

// Ping performs the minimal authenticated request used by the connection
// test: a single-row invoice fetch.
func (c *Client) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("limit", "1")
	_, err := c.get(ctx, EndpointInvoices, params)
	return err
}
