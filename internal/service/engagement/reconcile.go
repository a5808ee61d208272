package engagement

import (
	"context"
	"fmt"
	"log/slog"
)

// ReconcileReport summarizes a counter reconciliation run: how many rows of
// each counter were out of step with their relation table and got repaired.
type ReconcileReport struct {
	FollowersFixed int
	PostsFixed     int
	LikesFixed     int
	CommentsFixed  int
}

// Total returns the overall number of repaired rows.
func (r ReconcileReport) Total() int {
	return r.FollowersFixed + r.PostsFixed + r.LikesFixed + r.CommentsFixed
}

// Reconcile recomputes every denormalized counter from its relation table
// and fixes rows that drifted. Each counter is repaired in its own statement;
// a failure aborts the run and reports what was already fixed.
func (s *Service) Reconcile(ctx context.Context) (*ReconcileReport, error) {
	var report ReconcileReport
	var err error

	if report.FollowersFixed, err = s.businesses.RecountFollowers(ctx); err != nil {
		return &report, fmt.Errorf("engagement.Reconcile followers: %w", err)
	}
	if report.PostsFixed, err = s.businesses.RecountPosts(ctx); err != nil {
		return &report, fmt.Errorf("engagement.Reconcile posts: %w", err)
	}
	if report.LikesFixed, err = s.posts.RecountLikes(ctx); err != nil {
		return &report, fmt.Errorf("engagement.Reconcile likes: %w", err)
	}
	if report.CommentsFixed, err = s.posts.RecountComments(ctx); err != nil {
		return &report, fmt.Errorf("engagement.Reconcile comments: %w", err)
	}

	s.log.InfoContext(ctx, "counters reconciled",
		slog.Int("followers_fixed", report.FollowersFixed),
		slog.Int("posts_fixed", report.PostsFixed),
		slog.Int("likes_fixed", report.LikesFixed),
		slog.Int("comments_fixed", report.CommentsFixed))

	return &report, nil
}
