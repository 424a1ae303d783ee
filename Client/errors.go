package Client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrSubmitInFlight rejects a second analysis submission while one is still
// pending. The caller re-enables its submit control when the first returns.
var ErrSubmitInFlight = errors.New("an analysis is already being submitted")

// APIError is a request the server rejected. Detail carries the server's own
// message when it sent one, otherwise the per-action fallback.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

// NetError is a request that never got a response. Shown to users with a
// single generic message regardless of the underlying cause.
type NetError struct {
	Err error
}

func (e *NetError) Error() string {
	return "Network error. Please check your connection."
}

func (e *NetError) Unwrap() error {
	return e.Err
}

// SchemaError is a 2xx response whose body did not match the endpoint's
// contract. Distinct from APIError so a broken deploy is not mistaken for a
// user mistake.
type SchemaError struct {
	Endpoint string
	Err      error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected response from %s: %v", e.Endpoint, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ValidationError is a local precondition failure caught before any network
// call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func decodeAPIError(resp *http.Response, fallback string) *APIError {
	detail := fallback

	body, err := io.ReadAll(resp.Body)
	if err == nil {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
			detail = payload.Detail
		}
	}

	return &APIError{Status: resp.StatusCode, Detail: detail}
}
