package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/docs"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/config"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dispatch"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/handler"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/logger"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/repository"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/repository/clickhouse"
)

// @title Airmeet Snap-In Service API
// @version 1.0
// @description Reconciles Airmeet webhooks against the DevRev entity graph and validates snap-in configuration
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Initialize the stage-outcome audit log when configured
	var outcomes repository.OutcomeRecorder = repository.NopRecorder{}
	if cfg.ClickHouse.Host != "" {
		chClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
		if err != nil {
			log.Fatal("Failed to create ClickHouse client", zap.Error(err))
		}
		repo := clickhouse.NewRepository(chClient, log)
		if err := repo.InitSchema(ctx); err != nil {
			log.Fatal("Failed to initialize audit log schema", zap.Error(err))
		}
		defer func() {
			if err := repo.Close(); err != nil {
				log.Error("Failed to close ClickHouse client", zap.Error(err))
			}
		}()
		outcomes = repo
	} else {
		log.Info("No ClickHouse host configured, stage outcomes will not be recorded")
	}

	// Initialize dispatcher and handler
	dispatcher := dispatch.NewDispatcher(outcomes, log)
	h := handler.NewHandler(dispatcher, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
