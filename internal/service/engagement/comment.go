package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/pkg/ctxutil"
)

// AddCommentInput holds parameters for the comment creation operation.
// ParentID set means the comment is a reply to a top-level comment.
type AddCommentInput struct {
	PostID   uuid.UUID
	ParentID *uuid.UUID
	Content  string
}

// Validate validates the comment input against the configured length limit.
func (i AddCommentInput) Validate(maxCommentLength int) error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(i.Content) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddComment adds a comment or a reply to a post. Reply depth is capped at
// one level: replying to a reply is rejected. The comment row and the
// comments_count bump are written in one transaction.
func (s *Service) AddComment(ctx context.Context, userID uuid.UUID, input AddCommentInput) (*domain.Comment, error) {
	// Step 1: Validate input
	if err := input.Validate(s.cfg.MaxCommentLength); err != nil {
		return nil, err
	}

	// Step 2: Resolve the post
	p, err := s.posts.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("engagement.AddComment get post: %w", err)
	}
	if !p.IsActive {
		return nil, fmt.Errorf("engagement.AddComment: post %s: %w", input.PostID, domain.ErrNotFound)
	}

	// Step 3: Resolve the parent for replies
	if input.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("engagement.AddComment get parent: %w", err)
		}
		if parent.PostID != input.PostID {
			return nil, domain.NewValidationError("parent_id", "parent comment belongs to a different post")
		}
		if parent.IsReply() {
			return nil, domain.NewValidationError("parent_id", "replies cannot be nested")
		}
		if !parent.IsActive {
			return nil, fmt.Errorf("engagement.AddComment: parent comment %s: %w", *input.ParentID, domain.ErrNotFound)
		}
	}

	c := &domain.Comment{
		ID:       uuid.New(),
		UserID:   userID,
		PostID:   input.PostID,
		ParentID: input.ParentID,
		Content:  input.Content,
		IsActive: true,
	}

	// Step 4: Write comment and counter atomically
	var created *domain.Comment
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err = s.comments.Create(ctx, c)
		if err != nil {
			return err
		}
		if _, err := s.posts.AdjustCommentsCount(ctx, input.PostID, 1); err != nil {
			return fmt.Errorf("adjust comments count: %w", err)
		}
		return s.notifyCommented(ctx, userID, p)
	})
	if err != nil {
		return nil, fmt.Errorf("engagement.AddComment: %w", err)
	}

	return created, nil
}

// ListComments returns active comments for a post, oldest first.
func (s *Service) ListComments(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	if limit <= 0 || limit > s.cfg.FeedPageSize {
		limit = s.cfg.FeedPageSize
	}
	if offset < 0 {
		offset = 0
	}
	comments, err := s.comments.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("engagement.ListComments: %w", err)
	}
	return comments, nil
}

// DeleteComment soft-deletes a comment. The comment author and admins may
// delete. The comments_count decrement happens in the same transaction.
func (s *Service) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("engagement.DeleteComment get: %w", err)
	}
	if c.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("engagement.DeleteComment: user %s is not the author: %w", userID, domain.ErrForbidden)
	}
	if !c.IsActive {
		// Already deleted; nothing to do.
		return nil
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.comments.Deactivate(ctx, commentID); err != nil {
			return err
		}
		if _, err := s.posts.AdjustCommentsCount(ctx, c.PostID, -1); err != nil {
			return fmt.Errorf("adjust comments count: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("engagement.DeleteComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("comment_id", commentID.String()),
		slog.String("post_id", c.PostID.String()))

	return nil
}

// notifyCommented tells the post author about a new comment. Authors
// commenting on their own posts are not notified.
func (s *Service) notifyCommented(ctx context.Context, commenterID uuid.UUID, p *domain.Post) error {
	if commenterID == p.AuthorID {
		return nil
	}
	n := &domain.Notification{
		ID:         uuid.New(),
		Recipient:  p.AuthorID,
		Sender:     &commenterID,
		Type:       domain.NotificationTypeComment,
		Title:      "New comment",
		Message:    "Someone commented on your post",
		PostID:     &p.ID,
		BusinessID: &p.BusinessID,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("create comment notification: %w", err)
	}
	return nil
}
