package systemet

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAPIKey is returned by New when the key cannot be sent as a header value.
	ErrInvalidAPIKey = errors.New("systemet: api key is not a valid header value")

	// ErrEmptySearch is returned when a search request has no criteria set.
	ErrEmptySearch = errors.New("systemet: search request has no criteria")

	errDateRequired = errors.New("date is required")
	errDateLayout   = errors.New("input does not match the layout exactly")
)

// TransportError reports a failed request/response exchange: DNS, connect,
// TLS, timeout or a body that could not be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the underlying failure was a timeout.
func (e *TransportError) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// APIError is a single error reported by the API.
type APIError struct {
	Error   string `json:"Error"`
	Message string `json:"Message"`
}

func (e APIError) String() string {
	return fmt.Sprintf("error code: %s, message: %s", e.Error, e.Message)
}

// UnmarshalJSON requires both Error and Message to be present.
func (e *APIError) UnmarshalJSON(data []byte) error {
	type apiErrorAlias APIError
	if err := requireFields(data, "Error", "Message"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*apiErrorAlias)(e))
}

// APIErrors is the error payload returned by the API, in response order.
// It has no underlying cause.
type APIErrors []APIError

func (e APIErrors) Error() string {
	switch len(e) {
	case 0:
		return "API error: Got error response from API, but no error code or message"
	case 1:
		return "API error: " + e[0].String()
	}

	parts := make([]string, len(e))
	for i, apiErr := range e {
		parts[i] = "(" + apiErr.String() + ")"
	}
	return "API errors: " + strings.Join(parts, ", ")
}

// Codes returns the error codes in response order.
func (e APIErrors) Codes() []string {
	codes := make([]string, len(e))
	for i, apiErr := range e {
		codes[i] = apiErr.Error
	}
	return codes
}

// ParseError reports a body that matched neither the expected payload nor
// the error payload. Body holds the raw response text.
type ParseError struct {
	Err        error
	Body       string
	StatusCode int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Serialization/deserialization error: %v. Response body: '%s'", e.Err, e.Body)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a required field that was absent or null.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field `%s`", e.Field)
}

// SearchValidationError lists the search criteria that failed validation.
type SearchValidationError struct {
	Fields []FieldViolation
}

type FieldViolation struct {
	Field string
	Rule  string
}

func (e *SearchValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s failed on '%s'", f.Field, f.Rule)
	}
	return "systemet: invalid search request: " + strings.Join(parts, "; ")
}
