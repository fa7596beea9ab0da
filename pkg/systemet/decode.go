package systemet

import (
	"bytes"
	"encoding/json"
)

// requireFields fails when data is not a JSON object, or when any of names
// is absent or null.
func requireFields(data []byte, names ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, name := range names {
		v, ok := raw[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), jsonNull) {
			return &MissingFieldError{Field: name}
		}
	}
	return nil
}

// decodeResponse classifies a response body. A body that decodes as T wins
// even if it would also decode as an error payload. Otherwise an error
// payload yields APIErrors and the T failure is dropped. When neither shape
// fits, the T failure is returned in a ParseError with the raw body.
func decodeResponse[T any](body []byte) (T, error) {
	var out, zero T
	err := json.Unmarshal(body, &out)
	if err == nil {
		return out, nil
	}

	var apiErrs APIErrors
	if json.Unmarshal(body, &apiErrs) == nil {
		return zero, apiErrs
	}

	return zero, &ParseError{Err: err, Body: string(body)}
}
