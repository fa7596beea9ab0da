package catalog

import (
	"encoding/json"
	"time"

	"systemet/internal/domain"
)

type CatalogProductDTO struct {
	ProductNumber     string          `json:"productNumber"`
	ProductID         string          `json:"productId"`
	Name              string          `json:"name"`
	Category          *string         `json:"category"`
	Country           *string         `json:"country"`
	Price             float64         `json:"price"`
	AlcoholPercentage float64         `json:"alcoholPercentage"`
	Volume            float64         `json:"volume"`
	SellStartDate     string          `json:"sellStartDate"`
	SyncedAt          time.Time       `json:"syncedAt"`
	Product           json.RawMessage `json:"product"`
}

type StoreAssortmentResponse struct {
	SiteID   string            `json:"siteId"`
	Products []StoreProductDTO `json:"products"`
}

type StoreProductDTO struct {
	ProductID     string `json:"productId"`
	ProductNumber string `json:"productNumber"`
}

type SyncResponse struct {
	TraceID    string    `json:"traceId"`
	Products   int       `json:"products"`
	Stores     int       `json:"stores"`
	StoreLinks int       `json:"storeLinks"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	DurationMS int64     `json:"durationMs"`
}

type APIErrorDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	TraceID   string        `json:"traceId"`
	Error     string        `json:"error"`
	Message   string        `json:"message"`
	Details   interface{}   `json:"details,omitempty"`
	APIErrors []APIErrorDTO `json:"apiErrors,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

func toCatalogProductDTO(p domain.CatalogProduct) CatalogProductDTO {
	return CatalogProductDTO{
		ProductNumber:     p.ProductNumber,
		ProductID:         p.ProductID,
		Name:              p.Name,
		Category:          p.Category,
		Country:           p.Country,
		Price:             p.Price,
		AlcoholPercentage: p.AlcoholPercentage,
		Volume:            p.Volume,
		SellStartDate:     p.SellStartDate.Format("2006-01-02"),
		SyncedAt:          p.SyncedAt.UTC(),
		Product:           json.RawMessage(p.Payload),
	}
}

func toStoreAssortmentResponse(siteID string, links []domain.StoreAssortment) StoreAssortmentResponse {
	products := make([]StoreProductDTO, len(links))
	for i, l := range links {
		products[i] = StoreProductDTO{
			ProductID:     l.ProductID,
			ProductNumber: l.ProductNumber,
		}
	}
	return StoreAssortmentResponse{
		SiteID:   siteID,
		Products: products,
	}
}

func toSyncResponse(traceID string, r domain.SyncReport) SyncResponse {
	return SyncResponse{
		TraceID:    traceID,
		Products:   r.Products,
		Stores:     r.Stores,
		StoreLinks: r.StoreLinks,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		DurationMS: r.Duration().Milliseconds(),
	}
}
