package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"llm-prompt-repository/config"
	"llm-prompt-repository/internal/api"
	"llm-prompt-repository/internal/database"
	"llm-prompt-repository/internal/services"
	"llm-prompt-repository/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title LLM Prompt Repository
// @version 1.0.0
// @description Anonymous repository for sharing and browsing LLM prompts for scientific use.

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Log.Error("server stopped", zap.Error(err))
		logger.Sync()
		log.Fatalf("server stopped: %v", err)
	}
}

func run(cfg *config.Config) error {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	promptService := services.NewPromptService(db)
	if _, err := services.SeedPrompts(ctx, promptService); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(cfg, promptService, pinger(db)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("db_path", cfg.DBPath),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func pinger(db *gorm.DB) api.Pinger {
	return func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}
}
