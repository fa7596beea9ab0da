package catalog

import (
	"context"

	"systemet/internal/domain"
	"systemet/pkg/systemet"
)

// ProductAPI is the part of *systemet.Client the catalog uses.
type ProductAPI interface {
	GetProduct(ctx context.Context, id string) (*systemet.Product, error)
	GetAllProducts(ctx context.Context) ([]systemet.Product, error)
	GetProductsWithStore(ctx context.Context) ([]systemet.ProductsWithStore, error)
	Search(ctx context.Context, req systemet.SearchRequest) ([]systemet.Product, error)
}

type Service interface {
	GetProduct(ctx context.Context, id string) (*systemet.Product, error)
	ListProducts(ctx context.Context) ([]systemet.Product, error)
	ListProductsWithStore(ctx context.Context) ([]systemet.ProductsWithStore, error)
	Search(ctx context.Context, req systemet.SearchRequest) ([]systemet.Product, error)
	Sync(ctx context.Context) (*domain.SyncReport, error)
	GetMirroredProduct(ctx context.Context, productNumber string) (*domain.CatalogProduct, error)
	GetStoreAssortment(ctx context.Context, siteID string) ([]domain.StoreAssortment, error)
}

type Repository interface {
	ReplaceCatalog(ctx context.Context, products []domain.CatalogProduct, links []domain.StoreAssortment) error
	FindByProductNumber(ctx context.Context, productNumber string) (*domain.CatalogProduct, error)
	FindStoreAssortment(ctx context.Context, siteID string) ([]domain.StoreAssortment, error)
}
