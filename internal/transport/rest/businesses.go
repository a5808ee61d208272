package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/internal/service/business"
)

// businessService defines the minimal interface needed by BusinessHandler.
type businessService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input business.CreateInput) (*domain.Business, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Business, error)
	Update(ctx context.Context, userID, businessID uuid.UUID, input business.UpdateInput) (*domain.Business, error)
	List(ctx context.Context, filter domain.BusinessFilter) ([]domain.Business, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]domain.Business, error)
	UpdateStatus(ctx context.Context, businessID uuid.UUID, status domain.BusinessStatus) error
}

// BusinessHandler serves business profile REST endpoints.
type BusinessHandler struct {
	svc businessService
	log *slog.Logger
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(svc businessService, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{svc: svc, log: logger.With("handler", "business")}
}

type createBusinessRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	TownID      uuid.UUID            `json:"townId"`
	Address     string               `json:"address"`
	Latitude    *float64             `json:"latitude"`
	Longitude   *float64             `json:"longitude"`
	CategoryID  *uuid.UUID           `json:"categoryId"`
	Phone       string               `json:"phone"`
	Email       string               `json:"email"`
	Website     string               `json:"website"`
	Hours       domain.BusinessHours `json:"hours"`
}

type updateBusinessRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Address     *string              `json:"address"`
	Latitude    *float64             `json:"latitude"`
	Longitude   *float64             `json:"longitude"`
	CategoryID  *uuid.UUID           `json:"categoryId"`
	Phone       *string              `json:"phone"`
	Email       *string              `json:"email"`
	Website     *string              `json:"website"`
	HeroImage   *string              `json:"heroImage"`
	Logo        *string              `json:"logo"`
	Hours       domain.BusinessHours `json:"hours"`
}

type updateBusinessStatusRequest struct {
	Status domain.BusinessStatus `json:"status"`
}

type businessResponse struct {
	ID             string               `json:"id"`
	OwnerID        string               `json:"ownerId"`
	Name           string               `json:"name"`
	Slug           string               `json:"slug"`
	Description    string               `json:"description,omitempty"`
	TownID         string               `json:"townId"`
	TownName       string               `json:"townName,omitempty"`
	Address        string               `json:"address,omitempty"`
	Latitude       *float64             `json:"latitude,omitempty"`
	Longitude      *float64             `json:"longitude,omitempty"`
	CategoryID     *uuid.UUID           `json:"categoryId,omitempty"`
	Phone          string               `json:"phone,omitempty"`
	Email          string               `json:"email,omitempty"`
	Website        string               `json:"website,omitempty"`
	HeroImage      *string              `json:"heroImage,omitempty"`
	Logo           *string              `json:"logo,omitempty"`
	Hours          domain.BusinessHours `json:"hours,omitempty"`
	Status         string               `json:"status"`
	IsFeatured     bool                 `json:"isFeatured"`
	IsVerified     bool                 `json:"isVerified"`
	FollowersCount int                  `json:"followersCount"`
	PostsCount     int                  `json:"postsCount"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// Create handles POST /api/v1/businesses.
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req createBusinessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.svc.Create(r.Context(), userID, business.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		TownID:      req.TownID,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CategoryID:  req.CategoryID,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Hours:       req.Hours,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBusinessResponse(b))
}

// List handles GET /api/v1/businesses.
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.BusinessFilter{
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
		Limit:     queryInt(r, "limit", 0),
		Offset:    queryInt(r, "offset", 0),
	}
	if v := r.URL.Query().Get("town"); v != "" {
		filter.TownName = &v
	}
	if v := r.URL.Query().Get("categoryId"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.CategoryID = &id
		}
	}
	if v := r.URL.Query().Get("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.BusinessStatus(v)
		filter.Status = &status
	}

	businesses, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBusinessResponses(businesses))
}

// ListMine handles GET /api/v1/businesses/mine.
func (h *BusinessHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	businesses, err := h.svc.ListMine(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBusinessResponses(businesses))
}

// GetBySlug handles GET /api/v1/businesses/{slug}.
func (h *BusinessHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBusinessResponse(b))
}

// Update handles PATCH /api/v1/businesses/{id}. Owner only.
func (h *BusinessHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	businessID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateBusinessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.svc.Update(r.Context(), userID, businessID, business.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CategoryID:  req.CategoryID,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		HeroImage:   req.HeroImage,
		Logo:        req.Logo,
		Hours:       req.Hours,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBusinessResponse(b))
}

// UpdateStatus handles PATCH /api/v1/admin/businesses/{id}/status. Admin only.
func (h *BusinessHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	businessID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateBusinessStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), businessID, req.Status); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toBusinessResponse(b *domain.Business) businessResponse {
	return businessResponse{
		ID:             b.ID.String(),
		OwnerID:        b.OwnerID.String(),
		Name:           b.Name,
		Slug:           b.Slug,
		Description:    b.Description,
		TownID:         b.TownID.String(),
		TownName:       b.TownName,
		Address:        b.Address,
		Latitude:       b.Latitude,
		Longitude:      b.Longitude,
		CategoryID:     b.CategoryID,
		Phone:          b.Phone,
		Email:          b.Email,
		Website:        b.Website,
		HeroImage:      b.HeroImage,
		Logo:           b.Logo,
		Hours:          b.Hours,
		Status:         b.Status.String(),
		IsFeatured:     b.IsFeatured,
		IsVerified:     b.IsVerified,
		FollowersCount: b.FollowersCount,
		PostsCount:     b.PostsCount,
		CreatedAt:      b.CreatedAt,
	}
}

func toBusinessResponses(businesses []domain.Business) []businessResponse {
	out := make([]businessResponse, 0, len(businesses))
	for i := range businesses {
		out = append(out, toBusinessResponse(&businesses[i]))
	}
	return out
}
