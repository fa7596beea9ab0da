package systemet

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrors_Display(t *testing.T) {
	tests := []struct {
		name string
		errs APIErrors
		want string
	}{
		{
			name: "none",
			errs: APIErrors{},
			want: "API error: Got error response from API, but no error code or message",
		},
		{
			name: "one",
			errs: APIErrors{{Error: "E", Message: "M"}},
			want: "API error: error code: E, message: M",
		},
		{
			name: "many",
			errs: APIErrors{{Error: "E1", Message: "M1"}, {Error: "E2", Message: "M2"}},
			want: "API errors: (error code: E1, message: M1), (error code: E2, message: M2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errs.Error())
		})
	}
}

func TestAPIErrors_HasNoCause(t *testing.T) {
	var err error = APIErrors{{Error: "E", Message: "M"}}

	assert.Nil(t, errors.Unwrap(err))
}

func TestAPIErrors_Codes(t *testing.T) {
	errs := APIErrors{{Error: "A"}, {Error: "B"}}

	assert.Equal(t, []string{"A", "B"}, errs.Codes())
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Err: cause}

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Network error: connection refused", err.Error())
	assert.False(t, err.Timeout())
}

func TestTransportError_Timeout(t *testing.T) {
	err := &TransportError{Err: &net.OpError{Op: "dial", Err: context.DeadlineExceeded}}

	assert.True(t, err.Timeout())
}

func TestParseError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &ParseError{Err: cause, Body: "{"}

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Serialization/deserialization error: unexpected end of JSON input. Response body: '{'", err.Error())
}
