package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/kumr192/oraclearmcp001/internal/fusion"
)

// Error codes surfaced to the agent. Every upstream failure maps to exactly
// one of these; the agent never sees a raw transport error.
const (
	CodeAuthenticationFailed = "authentication_failed"
	CodePermissionDenied     = "permission_denied"
	CodeNotFound             = "not_found"
	CodeRateLimited          = "rate_limited"
	CodeTimeout              = "timeout"
	CodeConnectionFailed     = "connection_failed"
	CodeUpstreamError        = "upstream_error"
	CodeUnexpected           = "unexpected"
)

// ErrorPayload is the uniform tool-level error body. It is the complete
// result of a failed call: no data fields ride along with it.
type ErrorPayload struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
	Detail     any    `json:"detail,omitempty"`
}

// NormalizeError maps any failure from the fetch boundary into the fixed
// taxonomy. It never re-raises: callers serialize the payload and return it
// as the tool result.
func NormalizeError(err error) ErrorPayload {
	var statusErr *fusion.StatusError
	if errors.As(err, &statusErr) {
		return normalizeStatus(statusErr)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorPayload{Error: CodeTimeout, Message: "request to Oracle Fusion timed out"}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return ErrorPayload{Error: CodeTimeout, Message: "request to Oracle Fusion timed out"}
		}
		return ErrorPayload{Error: CodeConnectionFailed, Message: "could not reach Oracle Fusion: " + urlErr.Err.Error()}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrorPayload{Error: CodeTimeout, Message: "request to Oracle Fusion timed out"}
		}
		return ErrorPayload{Error: CodeConnectionFailed, Message: "could not reach Oracle Fusion: " + netErr.Error()}
	}

	return ErrorPayload{Error: CodeUnexpected, Message: err.Error()}
}

func normalizeStatus(statusErr *fusion.StatusError) ErrorPayload {
	switch statusErr.StatusCode {
	case http.StatusUnauthorized:
		return ErrorPayload{Error: CodeAuthenticationFailed, Message: "authentication failed"}
	case http.StatusForbidden:
		return ErrorPayload{Error: CodePermissionDenied, Message: "permission denied"}
	case http.StatusNotFound:
		return ErrorPayload{Error: CodeNotFound, Message: "resource not found"}
	case http.StatusTooManyRequests:
		return ErrorPayload{Error: CodeRateLimited, Message: "rate limited by Oracle Fusion"}
	}

	payload := ErrorPayload{
		Error:      CodeUpstreamError,
		Message:    fmt.Sprintf("API error %d", statusErr.StatusCode),
		StatusCode: statusErr.StatusCode,
	}
	// Pass the upstream's own error body through when it parses as JSON;
	// otherwise the status code alone has to do.
	var detail any
	if len(statusErr.Body) > 0 && json.Unmarshal([]byte(statusErr.Body), &detail) == nil {
		payload.Detail = detail
	}
	return payload
}
