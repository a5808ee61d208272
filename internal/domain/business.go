package domain

import (
	"time"

	"github.com/google/uuid"
)

// DayHours describes opening hours for a single weekday.
// Closed set to true means the open/close values are ignored.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// BusinessHours maps a lowercase weekday name ("monday".."sunday") to its hours.
type BusinessHours map[string]DayHours

// Business is a profile owned by a single user.
// Slug is globally unique and immutable after creation.
// FollowersCount and PostsCount are denormalized tallies kept consistent
// with the follows and posts tables by the engagement service.
type Business struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Slug           string
	Description    string
	TownID         uuid.UUID
	TownName       string
	Address        string
	Latitude       *float64
	Longitude      *float64
	CategoryID     *uuid.UUID
	Phone          string
	Email          string
	Website        string
	HeroImage      *string
	Logo           *string
	Hours          BusinessHours
	Status         BusinessStatus
	IsFeatured     bool
	IsVerified     bool
	FollowersCount int
	PostsCount     int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Follow is a standing subscription from a user to a business,
// unique per (user, business) pair.
type Follow struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BusinessID uuid.UUID
	CreatedAt  time.Time
}

// EngagementTotals holds live counter sums across a business's active posts.
type EngagementTotals struct {
	PostCount     int
	TotalLikes    int
	TotalComments int
	TotalShares   int
	TotalViews    int
}

// Interactions returns the sum of likes, comments and shares.
func (t EngagementTotals) Interactions() int {
	return t.TotalLikes + t.TotalComments + t.TotalShares
}

// BusinessAnalytics is a daily metrics snapshot, unique per (business, date).
type BusinessAnalytics struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Date           time.Time
	ProfileViews   int
	PostViews      int
	NewFollowers   int
	TotalLikes     int
	TotalComments  int
	TotalShares    int
	EngagementRate float64
	Reach          int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
