package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"systemet/internal/catalog"
)

func NewRouter(catalogCtrl *catalog.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", catalogCtrl.HandleListProducts)
		r.Post("/products/search", catalogCtrl.HandleSearch)
		r.Get("/products/{id}", catalogCtrl.HandleGetProduct)
		r.Get("/stores/products", catalogCtrl.HandleListProductsWithStore)

		r.Post("/catalog/sync", catalogCtrl.HandleSync)
		r.Get("/catalog/products/{productNumber}", catalogCtrl.HandleGetMirroredProduct)
		r.Get("/catalog/stores/{siteId}/products", catalogCtrl.HandleGetStoreAssortment)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		})
	}
}
