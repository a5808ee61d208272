// Package app wires configuration, storage, services and transport together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/zooner-app/zooner-backend/db"
	jwtauth "github.com/zooner-app/zooner-backend/internal/auth"
	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/transport/middleware"
	"github.com/zooner-app/zooner-backend/internal/transport/rest"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	analyticsrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/analytics"
	businessrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/business"
	categoryrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/category"
	chatrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/chat"
	commentrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/comment"
	followrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/follow"
	likerepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/like"
	notificationrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/notification"
	postrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/post"
	reportrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/report"
	tokenrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/token"
	townrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/town"
	userrepo "github.com/zooner-app/zooner-backend/internal/adapter/postgres/user"

	"github.com/zooner-app/zooner-backend/internal/service/analytics"
	"github.com/zooner-app/zooner-backend/internal/service/auth"
	"github.com/zooner-app/zooner-backend/internal/service/business"
	"github.com/zooner-app/zooner-backend/internal/service/catalog"
	"github.com/zooner-app/zooner-backend/internal/service/chat"
	"github.com/zooner-app/zooner-backend/internal/service/engagement"
	"github.com/zooner-app/zooner-backend/internal/service/feed"
	"github.com/zooner-app/zooner-backend/internal/service/moderation"
	"github.com/zooner-app/zooner-backend/internal/service/notification"
	"github.com/zooner-app/zooner-backend/internal/service/post"
	"github.com/zooner-app/zooner-backend/internal/service/user"
)

// Run is the server entry point. It loads configuration, connects to the
// database, optionally applies migrations, builds the service graph and
// serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		migrations, err := fs.Sub(db.Migrations, "migrations")
		if err != nil {
			return fmt.Errorf("open embedded migrations: %w", err)
		}
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	// Storage
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	towns := townrepo.New(pool)
	categories := categoryrepo.New(pool)
	businesses := businessrepo.New(pool)
	follows := followrepo.New(pool)
	posts := postrepo.New(pool)
	likes := likerepo.New(pool)
	comments := commentrepo.New(pool)
	chats := chatrepo.New(pool)
	notifications := notificationrepo.New(pool)
	reports := reportrepo.New(pool)
	analyticsStore := analyticsrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Infrastructure
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := jwtauth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	// Services
	authSvc := auth.NewService(logger, users, tokens, jwtManager, hasher, cfg.Auth)
	userSvc := user.NewService(logger, users, tokens, hasher)
	catalogSvc := catalog.NewService(logger, towns, categories)
	businessSvc := business.NewService(logger, businesses, users, towns, categories, analyticsStore, txm, cfg.Platform)
	postSvc := post.NewService(logger, posts, businesses, follows, notifications, txm, cfg.Platform)
	engagementSvc := engagement.NewService(logger, follows, likes, comments, posts, businesses, notifications, txm, cfg.Platform)
	feedSvc := feed.NewService(logger, posts, businesses, cfg.Platform)
	chatSvc := chat.NewService(logger, chats, businesses, notifications, txm, cfg.Platform)
	notificationSvc := notification.NewService(logger, notifications, notification.NewLogSender(logger), cfg.Platform)
	moderationSvc := moderation.NewService(logger, reports, posts, businesses, users, txm)
	analyticsSvc := analytics.NewService(logger, analyticsStore, businesses, follows)

	// Transport
	limiter := middleware.NewRateLimiter(cfg.Rate.CleanupInterval)
	defer limiter.Stop()

	handlers := rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Auth:         rest.NewAuthHandler(authSvc, logger),
		User:         rest.NewUserHandler(userSvc, logger),
		Catalog:      rest.NewCatalogHandler(catalogSvc, logger),
		Business:     rest.NewBusinessHandler(businessSvc, logger),
		Post:         rest.NewPostHandler(postSvc, logger),
		Engagement:   rest.NewEngagementHandler(engagementSvc, logger),
		Feed:         rest.NewFeedHandler(feedSvc, logger),
		Chat:         rest.NewChatHandler(chatSvc, logger),
		Notification: rest.NewNotificationHandler(notificationSvc, logger),
		Moderation:   rest.NewModerationHandler(moderationSvc, logger),
		Analytics:    rest.NewAnalyticsHandler(analyticsSvc, logger),
	}

	router := rest.NewRouter(logger, authSvc, limiter, *cfg, handlers)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
