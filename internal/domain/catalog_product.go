package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"systemet/pkg/systemet"
)

// CatalogProduct is a mirrored product row. Payload keeps the full API record.
type CatalogProduct struct {
	ProductNumber     string
	ProductID         string
	Name              string
	Category          *string
	Country           *string
	Price             float64
	AlcoholPercentage float64
	Volume            float64
	SellStartDate     time.Time
	Payload           []byte
	SyncedAt          time.Time
}

func NewCatalogProduct(p systemet.Product, syncedAt time.Time) (CatalogProduct, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return CatalogProduct{}, fmt.Errorf("encoding product %s: %w", p.ProductNumber, err)
	}

	return CatalogProduct{
		ProductNumber:     p.ProductNumber,
		ProductID:         p.ProductID,
		Name:              DisplayName(p),
		Category:          p.Category,
		Country:           p.Country,
		Price:             p.Price,
		AlcoholPercentage: p.AlcoholPercentage,
		Volume:            p.Volume,
		SellStartDate:     p.SellStartDate.Time(),
		Payload:           payload,
		SyncedAt:          syncedAt,
	}, nil
}

// Product decodes the stored API record.
func (c CatalogProduct) Product() (systemet.Product, error) {
	var p systemet.Product
	if err := json.Unmarshal(c.Payload, &p); err != nil {
		return systemet.Product{}, fmt.Errorf("decoding product %s: %w", c.ProductNumber, err)
	}
	return p, nil
}

// DisplayName joins the bold and thin name parts the way labels print them.
func DisplayName(p systemet.Product) string {
	if p.ProductNameThin == nil || *p.ProductNameThin == "" {
		return p.ProductNameBold
	}
	return p.ProductNameBold + " " + *p.ProductNameThin
}
