package domain

import "systemet/pkg/systemet"

// StoreAssortment links a store to one product it stocks.
type StoreAssortment struct {
	SiteID        string
	ProductNumber string
	ProductID     string
}

// FlattenAssortments expands per-store lists into one link per product,
// preserving store and product order.
func FlattenAssortments(stores []systemet.ProductsWithStore) []StoreAssortment {
	n := 0
	for _, s := range stores {
		n += len(s.Products)
	}

	links := make([]StoreAssortment, 0, n)
	for _, s := range stores {
		for _, p := range s.Products {
			links = append(links, StoreAssortment{
				SiteID:        s.SiteID,
				ProductNumber: p.ProductNumber,
				ProductID:     p.ProductID,
			})
		}
	}
	return links
}
