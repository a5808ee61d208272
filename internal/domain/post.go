package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is social content published by a business.
// The four counters are denormalized: LikesCount and CommentsCount must equal
// the count of corresponding likes/comments rows at all times. The engagement
// service adjusts them in the same transaction as the relation-row write.
type Post struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	AuthorID      uuid.UUID
	Caption       string
	Type          PostType
	Image         *string
	Video         *string
	Tags          []string
	CategoryID    *uuid.UUID
	LikesCount    int
	CommentsCount int
	SharesCount   int
	ViewsCount    int
	IsActive      bool
	IsFeatured    bool
	IsPinned      bool
	PublishedAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Like marks that a user liked a post, unique per (user, post) pair.
type Like struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PostID    uuid.UUID
	CreatedAt time.Time
}

// Comment is a user comment on a post. ParentID is nil for top-level comments;
// replies reference a top-level comment on the same post. Reply depth is capped
// at one level by construction, so reply chains cannot form cycles.
type Comment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PostID    uuid.UUID
	ParentID  *uuid.UUID
	Content   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReply reports whether the comment is a reply to another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
