// Command notify delivers pending notifications through the configured
// sender and marks them sent. It is intended to be invoked by an external
// cron job until a push provider is wired in.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	notificationrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/notification"
	"github.com/zooner-app/zooner-backend/internal/app"
	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/service/notification"
)

func main() {
	batchSize := flag.Int("batch", 100, "maximum notifications to deliver per run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := notification.NewService(logger, notificationrepo.New(pool), notification.NewLogSender(logger), cfg.Platform)

	sent, err := svc.DispatchUnsent(ctx, *batchSize)
	if err != nil {
		logger.Error("dispatch failed",
			slog.String("error", err.Error()),
			slog.Int("sent_before_failure", sent),
		)
		os.Exit(1)
	}

	logger.Info("dispatch completed", slog.Int("sent", sent))
}
