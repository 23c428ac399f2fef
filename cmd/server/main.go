package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"projectflow/internal/config"
	"projectflow/internal/handlers"
	"projectflow/internal/notify"
	"projectflow/internal/record"
	"projectflow/internal/services"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	logger := newLogger(cfg.App.Dev)
	defer func() { _ = logger.Sync() }()

	store := newStore(cfg, logger)
	notifier := notify.NewLog(logger)

	deps := services.Deps{
		Store:    store,
		Notifier: notifier,
		Logger:   logger,
		Delay:    cfg.Backend.Delay,
	}
	clientSvc := services.NewClientService(deps)
	projectSvc := services.NewProjectService(deps)
	taskSvc := services.NewTaskService(deps)
	invoiceSvc := services.NewInvoiceService(deps)
	statsSvc := services.NewStatsService(clientSvc, projectSvc, taskSvc, invoiceSvc)

	app := NewApp(Handlers{
		Dashboard: handlers.NewDashboardHandler(statsSvc),
		Clients:   handlers.NewClientHandler(clientSvc, projectSvc),
		Projects:  handlers.NewProjectHandler(projectSvc, taskSvc),
		Tasks:     handlers.NewTaskHandler(taskSvc),
		Invoices:  handlers.NewInvoiceHandler(invoiceSvc),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      withLogging(logger, app),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("data_mode", cfg.Backend.Mode),
			zap.Bool("dev", cfg.App.Dev),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}
	logger.Info("server stopped gracefully")
}

// newStore selects the record backend: the remote client in remote mode, the
// seeded in-memory fixture store otherwise.
func newStore(cfg *config.Config, logger *zap.Logger) record.Store {
	if cfg.Backend.Mode == config.ModeRemote {
		return record.NewClient(cfg.Backend.BaseURL, cfg.Backend.ProjectID, cfg.Backend.PublicKey, logger)
	}
	fx := record.NewFixtureStore(0)
	fx.SeedDemoData()
	return fx
}

func newLogger(dev bool) *zap.Logger {
	if dev {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}

// withLogging adds request logging middleware.
func withLogging(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
