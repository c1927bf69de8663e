package fusion

import "fmt"

// StatusError is returned when the upstream API answers with a non-2xx
// status. Body carries the raw response body (truncated) so callers can
// surface the upstream's own error detail when it parses as JSON.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}
