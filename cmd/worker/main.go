package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"myjobs/internal/app"
	"myjobs/internal/config"
	"myjobs/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}
	if cfg.NatsURL == "" {
		logrus.Fatal("NATS_URL is required: without it the server runs the background work itself")
	}

	logger.Setup(cfg.LogLevel, logger.FileOptions{
		Path:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})

	reg, err := app.OpenDatabases(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, reg)
	if err != nil {
		reg.Close()
		logrus.Fatal("Failed to initialize application: ", err)
	}
	defer a.Close(context.Background())

	bg, err := a.StartBackground(ctx)
	if err != nil {
		logrus.Fatal("Failed to start worker: ", err)
	}
	logrus.WithFields(logrus.Fields{
		"tasks":     bg.Worker.Names(),
		"schedules": bg.Scheduler.Names(),
	}).Info("Worker started")

	<-ctx.Done()
	logrus.Info("Shutting down worker")
	if err := bg.Stop(); err != nil {
		logrus.WithError(err).Error("Scheduler shutdown failed")
	}
}
