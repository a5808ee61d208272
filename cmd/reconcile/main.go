// Command reconcile recomputes the denormalized engagement counters
// (business followers/posts, post likes/comments) from their relation tables
// and repairs any drift. It is intended to be invoked by an external cron
// job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	businessrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/business"
	commentrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/comment"
	followrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/follow"
	likerepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/like"
	notificationrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/notification"
	postrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/post"
	"github.com/zooner-app/zooner-backend/internal/app"
	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/service/engagement"
)

func main() {
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

	svc := engagement.NewService(
		logger,
		followrepo.New(pool),
		likerepo.New(pool),
		commentrepo.New(pool),
		postrepo.New(pool),
		businessrepo.New(pool),
		notificationrepo.New(pool),
		postgres.NewTxManager(pool),
		cfg.Platform,
	)

	report, err := svc.Reconcile(ctx)
	if err != nil {
		logger.Error("reconcile failed",
			slog.String("error", err.Error()),
			slog.Int("fixed_before_failure", report.Total()),
		)
		os.Exit(1)
	}

	logger.Info("reconcile completed",
		slog.Int("followers_fixed", report.FollowersFixed),
		slog.Int("posts_fixed", report.PostsFixed),
		slog.Int("likes_fixed", report.LikesFixed),
		slog.Int("comments_fixed", report.CommentsFixed),
	)
}
