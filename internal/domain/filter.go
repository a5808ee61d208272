package domain

import "github.com/google/uuid"

// PostFilter contains filtering/pagination parameters for the post feed.
type PostFilter struct {
	// TownName restricts to posts whose business town name contains the
	// value, case-insensitive.
	TownName *string

	// FollowingOnly restricts to businesses the viewer follows. Ignored for
	// unauthenticated viewers.
	FollowingOnly bool

	BusinessID *uuid.UUID
	Type       *PostType
	CategoryID *uuid.UUID

	Limit  int
	Offset int
}

// BusinessFilter contains filtering/pagination parameters for business listings.
type BusinessFilter struct {
	Status *BusinessStatus

	// TownName matches the town name by case-insensitive substring.
	TownName *string

	CategoryID *uuid.UUID
	Featured   *bool

	// Search matches name or description by case-insensitive substring.
	Search *string

	// SortBy: "created_at" or "followers_count". Default "created_at".
	SortBy string
	// SortOrder: "ASC" or "DESC". Default "DESC".
	SortOrder string

	Limit  int
	Offset int
}

// NotificationFilter contains listing parameters for a recipient's notifications.
type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// ReportFilter contains listing parameters for the moderation queue.
type ReportFilter struct {
	Status *ReportStatus
	Limit  int
	Offset int
}
