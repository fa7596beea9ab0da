package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"systemet/internal/catalog"
	"systemet/internal/config"
	"systemet/internal/infrastructure/logger"
	"systemet/internal/infrastructure/mysql"
	"systemet/internal/server"
	"systemet/pkg/systemet"
)

func main() {
	// Existing environment variables win over .env entries.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	if envErr != nil {
		zapLogger.Debug("no .env file loaded", zap.Error(envErr))
	}

	client, err := systemet.New(cfg.Systemet.APIKey,
		systemet.WithBaseURL(cfg.Systemet.BaseURL),
		systemet.WithTimeout(cfg.Systemet.Timeout),
		systemet.WithLogger(zapLogger.Named("systemet")),
	)
	if err != nil {
		zapLogger.Fatal("creating product api client", zap.Error(err))
	}

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	catalogCtrl := catalog.NewModule(db, client, cfg.Sync.Timeout, zapLogger)

	router := server.NewRouter(catalogCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, cfg.Sync.Timeout, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
