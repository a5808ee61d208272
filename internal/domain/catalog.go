package domain

import (
	"time"

	"github.com/google/uuid"
)

// Town is a location businesses register under. Used for feed filtering.
type Town struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	Country   string
	Region    string
	Latitude  *float64
	Longitude *float64
	IsActive  bool
	CreatedAt time.Time
}

// Category classifies businesses (restaurants, shops, services, ...).
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	Icon        string
	Color       string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
}
