package post

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go -pkg post . postRepo businessRepo followRepo notificationRepo txManager

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultCfg() config.PlatformConfig {
	return config.PlatformConfig{
		MaxCaptionLength: 2000,
		MaxCommentLength: 500,
		FeedPageSize:     50,
	}
}

func activeBusiness(id, ownerID uuid.UUID) *domain.Business {
	return &domain.Business{
		ID:      id,
		OwnerID: ownerID,
		Name:    "Blue Door Cafe",
		Status:  domain.BusinessStatusActive,
	}
}

func TestCreate_PublishesAndNotifiesFollowers(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	businessID := uuid.New()
	follower1 := uuid.New()
	follower2 := uuid.New()

	postsMock := &postRepoMock{
		CreateFunc: func(ctx context.Context, p *domain.Post) (*domain.Post, error) {
			return p, nil
		},
	}
	businessesMock := &businessRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
			return activeBusiness(id, ownerID), nil
		},
		AdjustPostsCountFunc: func(ctx context.Context, id uuid.UUID, delta int) (int, error) {
			return 1, nil
		},
	}
	followsMock := &followRepoMock{
		ListFollowerIDsByBusinessFunc: func(ctx context.Context, businessID uuid.UUID) ([]uuid.UUID, error) {
			// The owner follows their own business; they must not be notified.
			return []uuid.UUID{follower1, follower2, ownerID}, nil
		},
	}
	notificationsMock := &notificationRepoMock{
		CreateBatchFunc: func(ctx context.Context, notifications []domain.Notification) error {
			return nil
		},
	}
	svc := NewService(testLogger(), postsMock, businessesMock, followsMock, notificationsMock, &txManagerMock{}, defaultCfg())

	created, err := svc.Create(context.Background(), ownerID, CreateInput{
		BusinessID: businessID,
		Caption:    "Fresh croissants every morning",
		Type:       domain.PostTypeUpdate,
	})

	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.False(t, created.PublishedAt.IsZero())

	bumps := businessesMock.AdjustPostsCountCalls()
	require.Len(t, bumps, 1)
	assert.Equal(t, 1, bumps[0].Delta)

	batches := notificationsMock.CreateBatchCalls()
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Notifications, 2)
	for _, n := range batches[0].Notifications {
		assert.Equal(t, domain.NotificationTypePost, n.Type)
		assert.Equal(t, "Blue Door Cafe", n.Title)
		assert.NotEqual(t, ownerID, n.Recipient)
	}
}

func TestCreate_NotOwner(t *testing.T) {
	t.Parallel()

	businessesMock := &businessRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
			return activeBusiness(id, uuid.New()), nil
		},
	}
	postsMock := &postRepoMock{}
	svc := NewService(testLogger(), postsMock, businessesMock, &followRepoMock{}, &notificationRepoMock{}, &txManagerMock{}, defaultCfg())

	_, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		BusinessID: uuid.New(),
		Caption:    "hi",
		Type:       domain.PostTypeUpdate,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, postsMock.CreateCalls())
}

func TestCreate_PendingBusinessCannotPost(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	businessesMock := &businessRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
			b := activeBusiness(id, ownerID)
			b.Status = domain.BusinessStatusPending
			return b, nil
		},
	}
	svc := NewService(testLogger(), &postRepoMock{}, businessesMock, &followRepoMock{}, &notificationRepoMock{}, &txManagerMock{}, defaultCfg())

	_, err := svc.Create(context.Background(), ownerID, CreateInput{
		BusinessID: uuid.New(),
		Caption:    "not yet",
		Type:       domain.PostTypeUpdate,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_CaptionTooLong(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &postRepoMock{}, &businessRepoMock{}, &followRepoMock{}, &notificationRepoMock{}, &txManagerMock{}, defaultCfg())

	_, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		BusinessID: uuid.New(),
		Caption:    string(make([]byte, 2001)),
		Type:       domain.PostTypeUpdate,
	})

	require.Error(t, err)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "caption", verr.Errors[0].Field)
}

func TestDelete_AuthorDeletesAndDecrements(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	businessID := uuid.New()
	postID := uuid.New()

	postsMock := &postRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return &domain.Post{ID: id, BusinessID: businessID, AuthorID: authorID, IsActive: true}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
	}
	businessesMock := &businessRepoMock{
		AdjustPostsCountFunc: func(ctx context.Context, id uuid.UUID, delta int) (int, error) {
			return 0, nil
		},
	}
	svc := NewService(testLogger(), postsMock, businessesMock, &followRepoMock{}, &notificationRepoMock{}, &txManagerMock{}, defaultCfg())

	err := svc.Delete(context.Background(), authorID, postID)

	require.NoError(t, err)
	require.Len(t, postsMock.DeleteCalls(), 1)

	bumps := businessesMock.AdjustPostsCountCalls()
	require.Len(t, bumps, 1)
	assert.Equal(t, -1, bumps[0].Delta)
	assert.Equal(t, businessID, bumps[0].ID)
}

func TestDelete_StrangerForbidden(t *testing.T) {
	t.Parallel()

	postsMock := &postRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return &domain.Post{ID: id, AuthorID: uuid.New(), IsActive: true}, nil
		},
	}
	svc := NewService(testLogger(), postsMock, &businessRepoMock{}, &followRepoMock{}, &notificationRepoMock{}, &txManagerMock{}, defaultCfg())

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, postsMock.DeleteCalls())
}

func TestDelete_AdminMayDelete(t *testing.T) {
	t.Parallel()

	postsMock := &postRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return &domain.Post{ID: id, BusinessID: uuid.New(), AuthorID: uuid.New(), IsActive: true}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
	}
	businessesMock := &businessRepoMock{
		AdjustPostsCountFunc: func(ctx context.Context, id uuid.UUID, delta int) (int, error) {
			return 0, nil
		},
	}
	svc := NewService(testLogger(), postsMock, businessesMock, &followRepoMock{}, &notificationRepoMock{}, &txManagerMock{}, defaultCfg())

	ctx := ctxutil.WithUserRole(context.Background(), domain.UserRoleAdmin.String())
	err := svc.Delete(ctx, uuid.New(), uuid.New())

	require.NoError(t, err)
	require.Len(t, postsMock.DeleteCalls(), 1)
}

func TestGet_InactiveHiddenFromStrangers(t *testing.T) {
	t.Parallel()

	postsMock := &postRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return &domain.Post{ID: id, AuthorID: uuid.New(), IsActive: false}, nil
		},
	}
	svc := NewService(testLogger(), postsMock, &businessRepoMock{}, &followRepoMock{}, &notificationRepoMock{}, &txManagerMock{}, defaultCfg())

	_, err := svc.Get(context.Background(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
