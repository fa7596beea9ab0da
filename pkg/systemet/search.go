package systemet

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// SearchRequest holds the optional search criteria. Every criterion is
// encoded, and unset ones are sent as null so the request shape is stable.
//
// Build one with NewSearchRequest and the With methods. Each With method
// returns a copy with a single criterion replaced; passing nil clears it.
type SearchRequest struct {
	AlcoholPercentageMax *float64       `json:"alcohol_percentage_max" validate:"omitnil,gte=0,lte=100"`
	AlcoholPercentageMin *float64       `json:"alcohol_percentage_min" validate:"omitnil,gte=0,lte=100"`
	AssortmentText       *string        `json:"assortment_text"`
	BottleTypeGroup      *string        `json:"bottle_type_group"`
	Country              *string        `json:"country"`
	CSR                  *string        `json:"csr"`
	Kind                 *string        `json:"type"` // product type
	News                 *string        `json:"news"`
	OriginLevel1         *string        `json:"origin_level_1"`
	OriginLevel2         *string        `json:"origin_level_2"`
	OtherSelections      *string        `json:"other_selections"`
	Page                 *int           `json:"page" validate:"omitnil,gte=0"`
	PriceMax             *float64       `json:"price_max" validate:"omitnil,gte=0"`
	PriceMin             *float64       `json:"price_min" validate:"omitnil,gte=0"`
	Seal                 *string        `json:"seal"`
	SearchQuery          *string        `json:"search_query"`
	SellStartDateFrom    *Date          `json:"sell_start_date_from"`
	SellStartDateTo      *Date          `json:"sell_start_date_to"`
	SortBy               *SortKey       `json:"sort_by" validate:"omitnil,gte=0,lte=7"`
	SortDirection        *SortDirection `json:"sort_direction" validate:"omitnil,gte=0,lte=1"`
	Style                *string        `json:"style"`
	SubCategory          *string        `json:"sub_category"`
	Vintage              *string        `json:"vintage"`
}

func NewSearchRequest() SearchRequest {
	return SearchRequest{}
}

// Ptr returns a pointer to v, for passing literals to the With methods.
func Ptr[T any](v T) *T {
	return &v
}

// IsZero reports whether no criterion is set.
func (r SearchRequest) IsZero() bool {
	return r == SearchRequest{}
}

var searchValidator = validator.New()

// Validate returns ErrEmptySearch when no criterion is set and a
// *SearchValidationError when a criterion is out of range.
func (r SearchRequest) Validate() error {
	if r.IsZero() {
		return ErrEmptySearch
	}

	err := searchValidator.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &SearchValidationError{Fields: make([]FieldViolation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldViolation{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

func (r SearchRequest) WithAlcoholPercentageMax(v *float64) SearchRequest {
	r.AlcoholPercentageMax = v
	return r
}

func (r SearchRequest) WithAlcoholPercentageMin(v *float64) SearchRequest {
	r.AlcoholPercentageMin = v
	return r
}

func (r SearchRequest) WithAssortmentText(v *string) SearchRequest {
	r.AssortmentText = v
	return r
}

func (r SearchRequest) WithBottleTypeGroup(v *string) SearchRequest {
	r.BottleTypeGroup = v
	return r
}

func (r SearchRequest) WithCountry(v *string) SearchRequest {
	r.Country = v
	return r
}

func (r SearchRequest) WithCSR(v *string) SearchRequest {
	r.CSR = v
	return r
}

func (r SearchRequest) WithKind(v *string) SearchRequest {
	r.Kind = v
	return r
}

func (r SearchRequest) WithNews(v *string) SearchRequest {
	r.News = v
	return r
}

func (r SearchRequest) WithOriginLevel1(v *string) SearchRequest {
	r.OriginLevel1 = v
	return r
}

func (r SearchRequest) WithOriginLevel2(v *string) SearchRequest {
	r.OriginLevel2 = v
	return r
}

func (r SearchRequest) WithOtherSelections(v *string) SearchRequest {
	r.OtherSelections = v
	return r
}

func (r SearchRequest) WithPage(v *int) SearchRequest {
	r.Page = v
	return r
}

func (r SearchRequest) WithPriceMax(v *float64) SearchRequest {
	r.PriceMax = v
	return r
}

func (r SearchRequest) WithPriceMin(v *float64) SearchRequest {
	r.PriceMin = v
	return r
}

func (r SearchRequest) WithSeal(v *string) SearchRequest {
	r.Seal = v
	return r
}

func (r SearchRequest) WithSearchQuery(v *string) SearchRequest {
	r.SearchQuery = v
	return r
}

func (r SearchRequest) WithSellStartDateFrom(v *Date) SearchRequest {
	r.SellStartDateFrom = v
	return r
}

func (r SearchRequest) WithSellStartDateTo(v *Date) SearchRequest {
	r.SellStartDateTo = v
	return r
}

func (r SearchRequest) WithSortBy(v *SortKey) SearchRequest {
	r.SortBy = v
	return r
}

func (r SearchRequest) WithSortDirection(v *SortDirection) SearchRequest {
	r.SortDirection = v
	return r
}

func (r SearchRequest) WithStyle(v *string) SearchRequest {
	r.Style = v
	return r
}

func (r SearchRequest) WithSubCategory(v *string) SearchRequest {
	r.SubCategory = v
	return r
}

func (r SearchRequest) WithVintage(v *string) SearchRequest {
	r.Vintage = v
	return r
}
