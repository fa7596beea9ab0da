package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "systemet/internal/errors"
	"systemet/pkg/systemet"
)

const maxSearchBodyBytes = 64 << 10

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	product, err := c.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, product)
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	products, err := c.service.ListProducts(r.Context())
	if err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, products)
}

func (c *Controller) HandleListProductsWithStore(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	stores, err := c.service.ListProductsWithStore(r.Context())
	if err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, stores)
}

func (c *Controller) HandleSearch(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	var req systemet.SearchRequest
	body := http.MaxBytesReader(w, r.Body, maxSearchBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.handleServiceError(w, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be a valid search request",
		}), logger)
		return
	}

	products, err := c.service.Search(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, products)
}

func (c *Controller) HandleSync(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	report, err := c.service.Sync(r.Context())
	if err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toSyncResponse(traceID, *report))
}

func (c *Controller) HandleGetMirroredProduct(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	product, err := c.service.GetMirroredProduct(r.Context(), chi.URLParam(r, "productNumber"))
	if err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toCatalogProductDTO(*product))
}

func (c *Controller) HandleGetStoreAssortment(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()
	siteID := chi.URLParam(r, "siteId")

	links, err := c.service.GetStoreAssortment(r.Context(), siteID)
	if err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toStoreAssortmentResponse(siteID, links))
}

func (c *Controller) trace() (string, *zap.Logger) {
	traceID := uuid.New().String()
	return traceID, c.logger.With(zap.String("traceId", traceID))
}

func (c *Controller) handleServiceError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, http.StatusBadRequest, ErrorResponse{
			TraceID: traceID,
			Error:   "VALIDATION_ERROR",
			Message: ve.Message,
			Details: ve.Details,
		})
		return
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, ErrorResponse{
			TraceID: traceID,
			Error:   "NOT_FOUND",
			Message: nf.Message,
		})
		return
	}

	if ue, ok := apperrors.IsUpstreamError(err); ok {
		c.handleUpstreamError(w, traceID, ue, logger)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, ErrorResponse{
		TraceID: traceID,
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}

func (c *Controller) handleUpstreamError(w http.ResponseWriter, traceID string, ue *apperrors.UpstreamError, logger *zap.Logger) {
	var (
		apiErrs      systemet.APIErrors
		transportErr *systemet.TransportError
		parseErr     *systemet.ParseError
	)

	switch {
	case errors.As(ue.Cause, &apiErrs):
		logger.Warn("product api returned errors", zap.String("operation", ue.Operation), zap.Strings("codes", apiErrs.Codes()))
		dtos := make([]APIErrorDTO, len(apiErrs))
		for i, e := range apiErrs {
			dtos[i] = APIErrorDTO{Code: e.Error, Message: e.Message}
		}
		c.writeError(w, http.StatusBadGateway, ErrorResponse{
			TraceID:   traceID,
			Error:     "UPSTREAM_API_ERROR",
			Message:   apiErrs.Error(),
			APIErrors: dtos,
		})

	case errors.As(ue.Cause, &transportErr):
		logger.Error("product api unreachable", zap.String("operation", ue.Operation), zap.Error(transportErr))
		status, code := http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"
		if transportErr.Timeout() {
			status, code = http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT"
		}
		c.writeError(w, status, ErrorResponse{
			TraceID: traceID,
			Error:   code,
			Message: "the product API could not be reached",
		})

	case errors.As(ue.Cause, &parseErr):
		logger.Error("product api response not understood",
			zap.String("operation", ue.Operation),
			zap.Int("status", parseErr.StatusCode),
			zap.NamedError("cause", parseErr.Err),
			zap.String("body", parseErr.Body),
		)
		c.writeError(w, http.StatusBadGateway, ErrorResponse{
			TraceID: traceID,
			Error:   "UPSTREAM_BAD_RESPONSE",
			Message: "the product API returned an unexpected response",
		})

	default:
		logger.Error("product api call failed", zap.String("operation", ue.Operation), zap.Error(ue.Cause))
		c.writeError(w, http.StatusBadGateway, ErrorResponse{
			TraceID: traceID,
			Error:   "UPSTREAM_ERROR",
			Message: "the product API call failed",
		})
	}
}

func (c *Controller) writeError(w http.ResponseWriter, status int, resp ErrorResponse) {
	resp.Timestamp = time.Now().UTC()
	c.writeJSON(w, status, resp)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
