package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"projectflow/internal/config"
	"projectflow/internal/recordd"
)

var seedFlag = flag.Bool("seed", false, "Load the demo dataset and exit")

func main() {
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := recordd.Open(cfg.Recordd.DSN, cfg.Recordd.SQLitePath)
	if err != nil {
		logger.Fatal("failed to open record db", zap.Error(err))
	}

	if *seedFlag || cfg.Recordd.Seed {
		if err := recordd.Seed(db); err != nil {
			logger.Fatal("seeding failed", zap.Error(err))
		}
		logger.Info("demo data seeded")
		if *seedFlag {
			return
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Recordd.Port,
		Handler:      recordd.NewServer(db, logger),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logger.Info("record backend starting", zap.String("port", cfg.Recordd.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}
	logger.Info("record backend stopped gracefully")
}
