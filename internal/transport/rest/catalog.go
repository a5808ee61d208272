package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/internal/service/catalog"
	"github.com/zooner-app/zooner-backend/pkg/ctxutil"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	ListTowns(ctx context.Context) ([]domain.Town, error)
	GetTownBySlug(ctx context.Context, slug string) (*domain.Town, error)
	CreateTown(ctx context.Context, input catalog.CreateTownInput) (*domain.Town, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error)
}

// CatalogHandler serves the towns and categories reference endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type townResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Country   string    `json:"country,omitempty"`
	Region    string    `json:"region,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

type createTownRequest struct {
	Name      string   `json:"name"`
	Country   string   `json:"country"`
	Region    string   `json:"region"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	SortOrder   int    `json:"sortOrder"`
}

// ListTowns handles GET /api/v1/towns.
func (h *CatalogHandler) ListTowns(w http.ResponseWriter, r *http.Request) {
	towns, err := h.svc.ListTowns(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]townResponse, 0, len(towns))
	for i := range towns {
		out = append(out, toTownResponse(&towns[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTown handles GET /api/v1/towns/{slug}.
func (h *CatalogHandler) GetTown(w http.ResponseWriter, r *http.Request) {
	town, err := h.svc.GetTownBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTownResponse(town))
}

// CreateTown handles POST /api/v1/admin/towns. Admin only.
func (h *CatalogHandler) CreateTown(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req createTownRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	town, err := h.svc.CreateTown(r.Context(), catalog.CreateTownInput{
		Name:      req.Name,
		Country:   req.Country,
		Region:    req.Region,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTownResponse(town))
}

// ListCategories handles GET /api/v1/categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCategory handles GET /api/v1/categories/{slug}.
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.svc.GetCategoryBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

// CreateCategory handles POST /api/v1/admin/categories. Admin only.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req createCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), catalog.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

// requireAdmin rejects non-admin requests with 403 (401 when anonymous).
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return false
	}
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}

func toTownResponse(t *domain.Town) townResponse {
	return townResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Slug:      t.Slug,
		Country:   t.Country,
		Region:    t.Region,
		Latitude:  t.Latitude,
		Longitude: t.Longitude,
		CreatedAt: t.CreatedAt,
	}
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		SortOrder:   c.SortOrder,
	}
}
