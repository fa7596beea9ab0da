package systemet

import (
	"encoding/json"
	"fmt"
)

// SortKey selects the search ordering. Values are the API's wire integers.
type SortKey int

const (
	SortByPrice         SortKey = 0
	SortByName          SortKey = 1
	SortByVolume        SortKey = 2
	SortByVintage       SortKey = 3
	SortByRank          SortKey = 4
	SortByCity          SortKey = 5
	SortBySellStartDate SortKey = 6
	SortByDisplayName   SortKey = 7
)

var sortKeyNames = map[SortKey]string{
	SortByPrice:         "Price",
	SortByName:          "Name",
	SortByVolume:        "Volume",
	SortByVintage:       "Vintage",
	SortByRank:          "Rank",
	SortByCity:          "City",
	SortBySellStartDate: "SellStartDate",
	SortByDisplayName:   "DisplayName",
}

func (k SortKey) Valid() bool {
	_, ok := sortKeyNames[k]
	return ok
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

func (k *SortKey) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if !SortKey(n).Valid() {
		return fmt.Errorf("invalid value: integer `%d`, expected one of 0..7 for SortKey", n)
	}
	*k = SortKey(n)
	return nil
}

type SortDirection int

const (
	Ascending  SortDirection = 0
	Descending SortDirection = 1
)

func (d SortDirection) Valid() bool {
	return d == Ascending || d == Descending
}

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	}
	return fmt.Sprintf("SortDirection(%d)", int(d))
}

func (d *SortDirection) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if !SortDirection(n).Valid() {
		return fmt.Errorf("invalid value: integer `%d`, expected 0 or 1 for SortDirection", n)
	}
	*d = SortDirection(n)
	return nil
}
