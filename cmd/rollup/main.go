// Command rollup writes the daily analytics snapshot for every active
// business. By default it rolls up today; pass -date YYYY-MM-DD to rerun a
// past day. Reruns overwrite the existing snapshot for that date.
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
	analyticsrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/analytics"
	businessrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/business"
	followrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/follow"
	"github.com/zooner-app/zooner-backend/internal/app"
	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/service/analytics"
)

func main() {
	dateFlag := flag.String("date", "", "rollup date as YYYY-MM-DD (default today)")
	flag.Parse()

	date := time.Now().UTC()
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			log.Fatalf("parse -date: %v", err)
		}
		date = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := analytics.NewService(logger, analyticsrepo.New(pool), businessrepo.New(pool), followrepo.New(pool))

	rolled, err := svc.RollupDaily(ctx, date)
	if err != nil {
		logger.Error("rollup failed",
			slog.String("error", err.Error()),
			slog.Time("date", date),
		)
		os.Exit(1)
	}

	logger.Info("rollup completed",
		slog.Int("businesses", rolled),
		slog.Time("date", date),
	)
}
