package systemet

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_RoundTrip(t *testing.T) {
	dates := []Date{
		NewDate(2020, time.January, 1),
		NewDate(1999, time.December, 31),
		NewDate(2024, time.February, 29),
		NewDate(1, time.January, 1),
		NewDate(9999, time.December, 31),
	}

	for _, d := range dates {
		data, err := json.Marshal(d)
		require.NoError(t, err)

		var got Date
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, d, got)
	}
}

func TestDate_MarshalUsesMidnight(t *testing.T) {
	data, err := json.Marshal(NewDate(2020, time.March, 5))

	require.NoError(t, err)
	assert.Equal(t, `"2020-03-05T00:00:00"`, string(data))
}

func TestDate_UnmarshalDropsTimeOfDay(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2021-06-15T13:45:10"`), &d))

	assert.Equal(t, NewDate(2021, time.June, 15), d)
}

func TestDate_UnmarshalMalformed(t *testing.T) {
	inputs := []string{`"2020-01-01"`, `"01/02/2020"`, `"null"`, `"2020-01-01T00:00:00Z"`,
		`"2020-01-01T00:00:00.999999"`, `"2020-01-01T00:00:00,5"`}

	for _, in := range inputs {
		var d Date
		err := json.Unmarshal([]byte(in), &d)

		var dateErr *DateError
		require.True(t, errors.As(err, &dateErr), "input %s", in)
		assert.Contains(t, err.Error(), dateErr.Value)
	}
}

func TestParseDate_RejectsFractionalSeconds(t *testing.T) {
	_, err := ParseDate("2020-01-01T00:00:00.5")

	var dateErr *DateError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, "2020-01-01T00:00:00.5", dateErr.Value)
}

func TestDate_MarshalZeroFails(t *testing.T) {
	_, err := json.Marshal(Date{})

	var dateErr *DateError
	assert.True(t, errors.As(err, &dateErr))

	_, err = json.Marshal(Product{})
	assert.Error(t, err)
}

func TestDate_UnmarshalNullIntoValueFails(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`null`), &d)

	assert.Error(t, err)
}

func TestOptionalDate_NullRoundTrip(t *testing.T) {
	type holder struct {
		When *Date `json:"when"`
	}

	data, err := json.Marshal(holder{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":null}`, string(data))

	var got holder
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Nil(t, got.When)

	d := NewDate(2022, time.October, 3)
	data, err = json.Marshal(holder{When: &d})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &got))
	require.NotNil(t, got.When)
	assert.Equal(t, d, *got.When)
}

func TestDateOf_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2020, time.January, 1, 1, 0, 0, 0, loc)

	assert.Equal(t, NewDate(2019, time.December, 31), DateOf(ts))
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, NewDate(2020, time.January, 1).IsZero())
}
