package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"invoice-assistant/config"
	_ "invoice-assistant/docs" // Swagger docs
	"invoice-assistant/internal/httpserver"
	"invoice-assistant/pkg/llmprovider"
	"invoice-assistant/pkg/log"
	"invoice-assistant/pkg/objectstore"
	"invoice-assistant/pkg/objectstore/local"
	"invoice-assistant/pkg/objectstore/s3"
	"invoice-assistant/pkg/postgres"
)

// @title       Invoice Assistant API
// @description Natural-language questions over the project, invoice and element tables, with spreadsheet and PDF reports.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Invoice Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.Auth.GeneratedSecrets {
		logger.Warn(ctx, "SECRET_KEY or PASSWORD_SALT not set: using random values, tokens and password changes reset on restart")
	}

	// 3. Postgres
	db, err := postgres.Open(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		Name:            cfg.Postgres.Name,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to postgres: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Postgres connected: host=%s db=%s user=%s", cfg.Postgres.Host, cfg.Postgres.Name, cfg.Postgres.User)

	// 4. LLM providers
	llm, err := newLLM(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	// 5. Report storage
	store, err := newObjectStore(ctx, cfg.Reports)
	if err != nil {
		logger.Error(ctx, "Failed to initialize report storage: ", err)
		return
	}
	logger.Infof(ctx, "Report storage: %s", cfg.Reports.Storage)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		LLM:         llm,
		ObjectStore: store,
		AppConfig:   cfg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newLLM(ctx context.Context, cfg *config.Config, logger log.Logger) (*llmprovider.Manager, error) {
	manager, initErrs, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	for _, e := range initErrs {
		logger.Warnf(ctx, "LLM provider skipped: %v", e)
	}
	if err != nil {
		return nil, err
	}
	logger.Infof(ctx, "LLM ready: %s (%s)", manager.Name(), manager.Model())
	return manager, nil
}

func newObjectStore(ctx context.Context, cfg config.ReportsConfig) (objectstore.ObjectStore, error) {
	switch cfg.Storage {
	case "", "local":
		return local.New(cfg.Dir)
	case "s3":
		return s3.New(ctx, s3.Config{
			Endpoint:         cfg.S3.Endpoint,
			Region:           cfg.S3.Region,
			Bucket:           cfg.S3.Bucket,
			AccessKeyID:      cfg.S3.AccessKeyID,
			SecretAccessKey:  cfg.S3.SecretAccessKey,
			UseSSL:           cfg.S3.UseSSL,
			Prefix:           cfg.S3.Prefix,
			AutoCreateBucket: cfg.S3.AutoCreateBucket,
		})
	default:
		return nil, fmt.Errorf("unknown reports.storage %q", cfg.Storage)
	}
}
