// Package rest exposes the application's services over HTTP/JSON.
package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/transport/middleware"
)

// tokenValidator resolves access tokens for the auth middleware.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	User         *UserHandler
	Catalog      *CatalogHandler
	Business     *BusinessHandler
	Post         *PostHandler
	Engagement   *EngagementHandler
	Feed         *FeedHandler
	Chat         *ChatHandler
	Notification *NotificationHandler
	Moderation   *ModerationHandler
	Analytics    *AnalyticsHandler
}

// NewRouter mounts all REST routes behind the standard middleware chain.
// Authentication is resolved for every request; per-route authorization is
// enforced inside the handlers.
func NewRouter(
	logger *slog.Logger,
	validator tokenValidator,
	limiter *middleware.RateLimiter,
	cfg config.Config,
	h Handlers,
) http.Handler {
	mux := http.NewServeMux()

	// Probes stay outside /api/v1 for the orchestrator's sake.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)
	mux.HandleFunc("POST /api/v1/auth/logout-all", h.Auth.LogoutAll)

	// Users
	mux.HandleFunc("GET /api/v1/users/me", h.User.Me)
	mux.HandleFunc("PATCH /api/v1/users/me", h.User.UpdateMe)
	mux.HandleFunc("DELETE /api/v1/users/me", h.User.DeactivateMe)
	mux.HandleFunc("POST /api/v1/users/me/password", h.User.ChangePassword)
	mux.HandleFunc("GET /api/v1/users/{username}", h.User.GetByUsername)

	// Towns and categories
	mux.HandleFunc("GET /api/v1/towns", h.Catalog.ListTowns)
	mux.HandleFunc("GET /api/v1/towns/{slug}", h.Catalog.GetTown)
	mux.HandleFunc("GET /api/v1/categories", h.Catalog.ListCategories)
	mux.HandleFunc("GET /api/v1/categories/{slug}", h.Catalog.GetCategory)

	// Businesses. "mine" is registered before the slug route; the more
	// specific literal pattern wins.
	mux.HandleFunc("POST /api/v1/businesses", h.Business.Create)
	mux.HandleFunc("GET /api/v1/businesses", h.Business.List)
	mux.HandleFunc("GET /api/v1/businesses/mine", h.Business.ListMine)
	mux.HandleFunc("GET /api/v1/businesses/{slug}", h.Business.GetBySlug)
	mux.HandleFunc("PATCH /api/v1/businesses/{id}", h.Business.Update)
	mux.HandleFunc("POST /api/v1/businesses/{id}/follow", h.Engagement.ToggleFollow)
	mux.HandleFunc("GET /api/v1/businesses/{id}/follow", h.Engagement.IsFollowing)
	mux.HandleFunc("GET /api/v1/businesses/{id}/analytics", h.Analytics.Dashboard)

	// Posts and engagement
	mux.HandleFunc("POST /api/v1/posts", h.Post.Create)
	mux.HandleFunc("GET /api/v1/posts/{id}", h.Post.Get)
	mux.HandleFunc("PATCH /api/v1/posts/{id}", h.Post.Update)
	mux.HandleFunc("DELETE /api/v1/posts/{id}", h.Post.Delete)
	mux.HandleFunc("POST /api/v1/posts/{id}/like", h.Engagement.ToggleLike)
	mux.HandleFunc("POST /api/v1/posts/{id}/view", h.Engagement.RecordView)
	mux.HandleFunc("POST /api/v1/posts/{id}/share", h.Engagement.RecordShare)
	mux.HandleFunc("POST /api/v1/posts/{id}/comments", h.Engagement.AddComment)
	mux.HandleFunc("GET /api/v1/posts/{id}/comments", h.Engagement.ListComments)
	mux.HandleFunc("DELETE /api/v1/comments/{id}", h.Engagement.DeleteComment)

	// Feed and search
	mux.HandleFunc("GET /api/v1/feed", h.Feed.ListPosts)
	mux.HandleFunc("GET /api/v1/search", h.Feed.Search)

	// Chats
	mux.HandleFunc("POST /api/v1/chats", h.Chat.Start)
	mux.HandleFunc("GET /api/v1/chats", h.Chat.List)
	mux.HandleFunc("GET /api/v1/chats/unread-count", h.Chat.CountUnread)
	mux.HandleFunc("POST /api/v1/chats/{id}/messages", h.Chat.SendMessage)
	mux.HandleFunc("GET /api/v1/chats/{id}/messages", h.Chat.ListMessages)

	// Notifications
	mux.HandleFunc("GET /api/v1/notifications", h.Notification.List)
	mux.HandleFunc("GET /api/v1/notifications/unread-count", h.Notification.CountUnread)
	mux.HandleFunc("POST /api/v1/notifications/read-all", h.Notification.MarkAllRead)
	mux.HandleFunc("POST /api/v1/notifications/{id}/read", h.Notification.MarkRead)

	// Moderation
	mux.HandleFunc("POST /api/v1/reports", h.Moderation.Report)

	// Admin
	mux.HandleFunc("POST /api/v1/admin/towns", h.Catalog.CreateTown)
	mux.HandleFunc("POST /api/v1/admin/categories", h.Catalog.CreateCategory)
	mux.HandleFunc("PATCH /api/v1/admin/businesses/{id}/status", h.Business.UpdateStatus)
	mux.HandleFunc("GET /api/v1/admin/reports", h.Moderation.ListReports)
	mux.HandleFunc("POST /api/v1/admin/reports/{id}/review", h.Moderation.ReviewReport)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Rate.Enabled && limiter != nil {
		mws = append(mws, limiter.Limit(cfg.Rate.RequestsPerMin))
	}
	mws = append(mws, middleware.Auth(validator))

	return middleware.Chain(mws...)(mux)
}
