package catalog

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"systemet/internal/catalog/repository"
)

func NewModule(db *sql.DB, api ProductAPI, syncTimeout time.Duration, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(api, repo, logger, syncTimeout)
	return NewController(svc, logger)
}
