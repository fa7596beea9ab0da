package systemet

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var searchRequestKeys = []string{
	"alcohol_percentage_max", "alcohol_percentage_min", "assortment_text", "bottle_type_group",
	"country", "csr", "type", "news", "origin_level_1", "origin_level_2", "other_selections",
	"page", "price_max", "price_min", "seal", "search_query", "sell_start_date_from",
	"sell_start_date_to", "sort_by", "sort_direction", "style", "sub_category", "vintage",
}

func TestSearchRequest_DefaultIsZero(t *testing.T) {
	req := NewSearchRequest()

	assert.True(t, req.IsZero())
	assert.ErrorIs(t, req.Validate(), ErrEmptySearch)
}

func TestSearchRequest_SetterChangesOneField(t *testing.T) {
	base := NewSearchRequest().WithCountry(Ptr("Italien"))
	next := base.WithPriceMax(Ptr(200.0))

	assert.Nil(t, base.PriceMax)
	require.NotNil(t, next.PriceMax)
	assert.Equal(t, 200.0, *next.PriceMax)
	assert.Equal(t, "Italien", *next.Country)
	assert.False(t, next.IsZero())
}

func TestSearchRequest_NilClearsField(t *testing.T) {
	req := NewSearchRequest().WithSeal(Ptr("Skruvkapsyl")).WithSeal(nil)

	assert.True(t, req.IsZero())
}

func TestSearchRequest_EmitsEveryKey(t *testing.T) {
	data, err := json.Marshal(NewSearchRequest().WithKind(Ptr("Rött vin")))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Len(t, fields, len(searchRequestKeys))
	for _, key := range searchRequestKeys {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, "Rött vin", fields["type"])
	assert.Nil(t, fields["country"])
	assert.NotContains(t, fields, "kind")
}

func TestSearchRequest_RoundTrip(t *testing.T) {
	from := NewDate(2020, time.January, 1)
	to := NewDate(2020, time.December, 31)

	req := NewSearchRequest().
		WithAlcoholPercentageMax(Ptr(14.5)).
		WithAlcoholPercentageMin(Ptr(11.0)).
		WithAssortmentText(Ptr("Fast sortiment")).
		WithBottleTypeGroup(Ptr("Flaska")).
		WithCountry(Ptr("Frankrike")).
		WithCSR(Ptr("Ekologiskt")).
		WithKind(Ptr("Rött vin")).
		WithNews(Ptr("true")).
		WithOriginLevel1(Ptr("Bourgogne")).
		WithOriginLevel2(Ptr("Côte de Nuits")).
		WithOtherSelections(Ptr("Vegan")).
		WithPage(Ptr(2)).
		WithPriceMin(Ptr(100.0)).
		WithSeal(Ptr("Kork")).
		WithSearchQuery(Ptr("pinot")).
		WithSellStartDateFrom(&from).
		WithSellStartDateTo(&to).
		WithSortBy(Ptr(SortByPrice)).
		WithSortDirection(Ptr(Descending)).
		WithStyle(Ptr("Fruktigt")).
		WithSubCategory(Ptr("Rött vin")).
		WithVintage(Ptr("2018"))

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var got SearchRequest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, req, got)
	assert.Nil(t, got.PriceMax)
}

func TestSearchRequest_DatesOnTheWire(t *testing.T) {
	from := NewDate(2021, time.May, 1)
	data, err := json.Marshal(NewSearchRequest().WithSellStartDateFrom(&from))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "2021-05-01T00:00:00", fields["sell_start_date_from"])
	assert.Nil(t, fields["sell_start_date_to"])
}

func TestSearchRequest_ValidateRanges(t *testing.T) {
	req := NewSearchRequest().
		WithPriceMin(Ptr(-1.0)).
		WithSortBy(Ptr(SortKey(9)))

	err := req.Validate()

	var verr *SearchValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"PriceMin", "SortBy"}, fields)
}

func TestSearchRequest_ValidateAccepts(t *testing.T) {
	req := NewSearchRequest().
		WithSearchQuery(Ptr("öl")).
		WithSortBy(Ptr(SortByDisplayName)).
		WithSortDirection(Ptr(Ascending)).
		WithPage(Ptr(0))

	assert.NoError(t, req.Validate())
}
