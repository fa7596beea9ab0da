package systemet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResponse_Success(t *testing.T) {
	p, err := decodeResponse[Product]([]byte(testProductJSON))

	require.NoError(t, err)
	assert.Equal(t, "1", p.ProductID)
}

func TestDecodeResponse_PrefersSuccessShape(t *testing.T) {
	type envelope struct {
		Error   string `json:"Error"`
		Message string `json:"Message"`
	}
	body := []byte(`[{"Error":"E1","Message":"looks like an error"}]`)

	got, err := decodeResponse[[]envelope](body)

	require.NoError(t, err)
	assert.Equal(t, []envelope{{Error: "E1", Message: "looks like an error"}}, got)
}

func TestDecodeResponse_FallsBackToAPIErrors(t *testing.T) {
	body := []byte(`[{"Error":"NotFound","Message":"Product not found"},{"Error":"Other","Message":"second"}]`)

	_, err := decodeResponse[Product](body)

	var apiErrs APIErrors
	require.True(t, errors.As(err, &apiErrs))
	assert.Equal(t, APIErrors{
		{Error: "NotFound", Message: "Product not found"},
		{Error: "Other", Message: "second"},
	}, apiErrs)

	var parseErr *ParseError
	assert.False(t, errors.As(err, &parseErr))
}

func TestDecodeResponse_ErrorArrayIsNotAProductList(t *testing.T) {
	body := []byte(`[{"Error":"Unauthorized","Message":"Access denied"}]`)

	products, err := decodeResponse[[]Product](body)

	assert.Nil(t, products)
	var apiErrs APIErrors
	require.True(t, errors.As(err, &apiErrs))
	assert.Len(t, apiErrs, 1)
}

func TestDecodeResponse_ParseFailureKeepsBody(t *testing.T) {
	body := `not json`

	_, err := decodeResponse[Product]([]byte(body))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, body, parseErr.Body)
	assert.NotNil(t, parseErr.Unwrap())
	assert.Contains(t, err.Error(), "Response body: '"+body+"'")
}

func TestDecodeResponse_NeitherShape(t *testing.T) {
	body := `{"message":"Resource not found"}`

	_, err := decodeResponse[Product]([]byte(body))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	var missing *MissingFieldError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, body, parseErr.Body)
}
