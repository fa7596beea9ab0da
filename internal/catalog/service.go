package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"systemet/internal/domain"
	apperrors "systemet/internal/errors"
	"systemet/pkg/systemet"
)

type catalogService struct {
	api         ProductAPI
	repo        Repository
	logger      *zap.Logger
	syncTimeout time.Duration
	now         func() time.Time
}

func NewService(api ProductAPI, repo Repository, logger *zap.Logger, syncTimeout time.Duration) Service {
	return &catalogService{
		api:         api,
		repo:        repo,
		logger:      logger,
		syncTimeout: syncTimeout,
		now:         time.Now,
	}
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*systemet.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("id is required", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must not be empty",
		})
	}

	p, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, apperrors.NewUpstreamError("get product", err)
	}
	return p, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]systemet.Product, error) {
	products, err := s.api.GetAllProducts(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamError("get all products", err)
	}
	return products, nil
}

func (s *catalogService) ListProductsWithStore(ctx context.Context) ([]systemet.ProductsWithStore, error) {
	stores, err := s.api.GetProductsWithStore(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamError("get products with store", err)
	}
	return stores, nil
}

func (s *catalogService) Search(ctx context.Context, req systemet.SearchRequest) ([]systemet.Product, error) {
	if err := validateSearch(req); err != nil {
		return nil, err
	}

	products, err := s.api.Search(ctx, req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("search", err)
	}
	return products, nil
}

// validateSearch turns the client's search checks into a ValidationError.
func validateSearch(req systemet.SearchRequest) error {
	err := req.Validate()
	if err == nil {
		return nil
	}

	if errors.Is(err, systemet.ErrEmptySearch) {
		return apperrors.NewValidationError("search request has no criteria", apperrors.ValidationDetail{
			Field:   "body",
			Message: "at least one search criterion must be set",
		})
	}

	var verr *systemet.SearchValidationError
	if errors.As(err, &verr) {
		details := make([]apperrors.ValidationDetail, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.Field,
				Message: fmt.Sprintf("failed on the '%s' rule", f.Rule),
			})
		}
		return apperrors.NewValidationError("validation failed", details...)
	}

	return apperrors.NewInternalError("validating search request", err)
}

// Sync fetches the product list and the store assortments concurrently and
// replaces the mirror with them. Nothing is written if either fetch fails.
func (s *catalogService) Sync(ctx context.Context) (*domain.SyncReport, error) {
	startedAt := s.now().UTC()
	s.logger.Info("catalog sync started")

	syncCtx, cancel := context.WithTimeout(ctx, s.syncTimeout)
	defer cancel()

	var (
		products []systemet.Product
		stores   []systemet.ProductsWithStore
	)

	g, gctx := errgroup.WithContext(syncCtx)
	g.Go(func() error {
		var err error
		products, err = s.api.GetAllProducts(gctx)
		if err != nil {
			return apperrors.NewUpstreamError("get all products", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stores, err = s.api.GetProductsWithStore(gctx)
		if err != nil {
			return apperrors.NewUpstreamError("get products with store", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("catalog sync fetch failed", zap.Error(err))
		return nil, err
	}

	rows := make([]domain.CatalogProduct, 0, len(products))
	for _, p := range products {
		row, err := domain.NewCatalogProduct(p, startedAt)
		if err != nil {
			return nil, apperrors.NewInternalError("building mirror row", err)
		}
		rows = append(rows, row)
	}
	links := domain.FlattenAssortments(stores)

	if err := s.repo.ReplaceCatalog(syncCtx, rows, links); err != nil {
		s.logger.Error("catalog sync write failed", zap.Error(err))
		return nil, apperrors.NewInternalError("writing catalog mirror", err)
	}

	report := &domain.SyncReport{
		Products:   len(rows),
		Stores:     len(stores),
		StoreLinks: len(links),
		StartedAt:  startedAt,
		FinishedAt: s.now().UTC(),
	}
	s.logger.Info("catalog sync finished",
		zap.Int("products", report.Products),
		zap.Int("stores", report.Stores),
		zap.Int("storeLinks", report.StoreLinks),
		zap.Duration("duration", report.Duration()),
	)
	return report, nil
}

func (s *catalogService) GetMirroredProduct(ctx context.Context, productNumber string) (*domain.CatalogProduct, error) {
	return s.repo.FindByProductNumber(ctx, productNumber)
}

func (s *catalogService) GetStoreAssortment(ctx context.Context, siteID string) ([]domain.StoreAssortment, error) {
	links, err := s.repo.FindStoreAssortment(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no products mirrored for site %s", siteID))
	}
	return links, nil
}
