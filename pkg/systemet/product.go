package systemet

import "encoding/json"

// Product is one catalog item. Optional attributes are pointers and stay nil
// when the API leaves them out.
type Product struct {
	AlcoholPercentage         float64 `json:"AlcoholPercentage"`
	Assortment                *string `json:"Assortment"`
	AssortmentText            *string `json:"AssortmentText"`
	BeverageDescriptionShort  *string `json:"BeverageDescriptionShort"`
	BottleTextShort           *string `json:"BottleTextShort"`
	Category                  *string `json:"Category"`
	Country                   *string `json:"Country"`
	EthicalLabel              *string `json:"EthicalLabel"`
	IsCompletelyOutOfStock    bool    `json:"IsCompletelyOutOfStock"`
	IsEthical                 bool    `json:"IsEthical"`
	IsInStoreSearchAssortment *string `json:"IsInStoreSearchAssortment"`
	IsKosher                  bool    `json:"IsKosher"`
	IsManufacturingCountry    bool    `json:"IsManufacturingCountry"`
	IsNews                    bool    `json:"IsNews"`
	IsOrganic                 bool    `json:"IsOrganic"`
	IsRegionalRestricted      bool    `json:"IsRegionalRestricted"`
	IsTemporarilyOutOfStock   *bool   `json:"IsTemporarilyOutOfStock"`
	IsWebLaunch               bool    `json:"IsWebLaunch"`
	Kind                      *string `json:"Type"` // product type
	OriginLevel1              *string `json:"OriginLevel1"`
	OriginLevel2              *string `json:"OriginLevel2"`
	Price                     float64 `json:"Price"`
	ProducerName              *string `json:"ProducerName"`
	ProductID                 string  `json:"ProductId"`
	ProductNameBold           string  `json:"ProductNameBold"`
	ProductNameThin           *string `json:"ProductNameThin"`
	ProductNumberShort        *string `json:"ProductNumberShort"`
	ProductNumber             string  `json:"ProductNumber"`
	RecycleFee                float64 `json:"RecycleFee"`
	RestrictedParcelQuantity  int     `json:"RestrictedParcelQuantity"`
	Seal                      *string `json:"Seal"`
	SellStartDate             Date    `json:"SellStartDate"`
	Style                     *string `json:"Style"`
	SubCategory               *string `json:"SubCategory"`
	SupplierName              *string `json:"SupplierName"`
	Taste                     *string `json:"Taste"`
	Usage                     *string `json:"Usage"`
	Vintage                   int     `json:"Vintage"`
	Volume                    float64 `json:"Volume"`
}

var productRequiredFields = []string{
	"AlcoholPercentage",
	"IsCompletelyOutOfStock",
	"IsEthical",
	"IsKosher",
	"IsManufacturingCountry",
	"IsNews",
	"IsOrganic",
	"IsRegionalRestricted",
	"IsWebLaunch",
	"Price",
	"ProductId",
	"ProductNameBold",
	"ProductNumber",
	"RecycleFee",
	"RestrictedParcelQuantity",
	"SellStartDate",
	"Vintage",
	"Volume",
}

// UnmarshalJSON rejects objects missing a required field. Unknown keys are ignored.
func (p *Product) UnmarshalJSON(data []byte) error {
	type productAlias Product
	if err := requireFields(data, productRequiredFields...); err != nil {
		return err
	}
	return json.Unmarshal(data, (*productAlias)(p))
}

// ProductsWithStore lists the products stocked by one store.
type ProductsWithStore struct {
	SiteID   string             `json:"SiteId"`
	Products []ProductWithStore `json:"Products"`
}

func (s *ProductsWithStore) UnmarshalJSON(data []byte) error {
	type productsWithStoreAlias ProductsWithStore
	if err := requireFields(data, "SiteId", "Products"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*productsWithStoreAlias)(s))
}

type ProductWithStore struct {
	ProductID     string `json:"ProductId"`
	ProductNumber string `json:"ProductNumber"`
}

func (p *ProductWithStore) UnmarshalJSON(data []byte) error {
	type productWithStoreAlias ProductWithStore
	if err := requireFields(data, "ProductId", "ProductNumber"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*productWithStoreAlias)(p))
}
