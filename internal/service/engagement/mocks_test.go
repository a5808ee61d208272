package engagement

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

var _ followRepo = &followRepoMock{}

type followRepoMock struct {
	InsertFunc func(ctx context.Context, f *domain.Follow) (bool, error)
	DeleteFunc func(ctx context.Context, userID, businessID uuid.UUID) (bool, error)
	ExistsFunc func(ctx context.Context, userID, businessID uuid.UUID) (bool, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			F   *domain.Follow
		}
		Delete []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			BusinessID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *followRepoMock) Insert(ctx context.Context, f *domain.Follow) (bool, error) {
	if mock.InsertFunc == nil {
		panic("followRepoMock.InsertFunc: method is nil but followRepo.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		Ctx context.Context
		F   *domain.Follow
	}{ctx, f})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, f)
}

func (mock *followRepoMock) InsertCalls() []struct {
	Ctx context.Context
	F   *domain.Follow
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Insert
}

func (mock *followRepoMock) Delete(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("followRepoMock.DeleteFunc: method is nil but followRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx        context.Context
		UserID     uuid.UUID
		BusinessID uuid.UUID
	}{ctx, userID, businessID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, businessID)
}

func (mock *followRepoMock) DeleteCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	BusinessID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *followRepoMock) Exists(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("followRepoMock.ExistsFunc: method is nil but followRepo.Exists was just called")
	}
	return mock.ExistsFunc(ctx, userID, businessID)
}

var _ likeRepo = &likeRepoMock{}

type likeRepoMock struct {
	InsertFunc func(ctx context.Context, l *domain.Like) (bool, error)
	DeleteFunc func(ctx context.Context, userID, postID uuid.UUID) (bool, error)
}

func (mock *likeRepoMock) Insert(ctx context.Context, l *domain.Like) (bool, error) {
	if mock.InsertFunc == nil {
		panic("likeRepoMock.InsertFunc: method is nil but likeRepo.Insert was just called")
	}
	return mock.InsertFunc(ctx, l)
}

func (mock *likeRepoMock) Delete(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("likeRepoMock.DeleteFunc: method is nil but likeRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, postID)
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPostFunc func(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error)
	DeactivateFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		Deactivate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		C   *domain.Comment
	}{ctx, c})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *commentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *commentRepoMock) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	if mock.ListByPostFunc == nil {
		panic("commentRepoMock.ListByPostFunc: method is nil but commentRepo.ListByPost was just called")
	}
	return mock.ListByPostFunc(ctx, postID, limit, offset)
}

func (mock *commentRepoMock) Deactivate(ctx context.Context, id uuid.UUID) error {
	if mock.DeactivateFunc == nil {
		panic("commentRepoMock.DeactivateFunc: method is nil but commentRepo.Deactivate was just called")
	}
	mock.lock.Lock()
	mock.calls.Deactivate = append(mock.calls.Deactivate, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{ctx, id})
	mock.lock.Unlock()
	return mock.DeactivateFunc(ctx, id)
}

func (mock *commentRepoMock) DeactivateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Deactivate
}

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	AdjustLikesCountFunc    func(ctx context.Context, id uuid.UUID, delta int) (int, error)
	AdjustCommentsCountFunc func(ctx context.Context, id uuid.UUID, delta int) (int, error)
	IncrementViewsFunc      func(ctx context.Context, id uuid.UUID) (int, error)
	IncrementSharesFunc     func(ctx context.Context, id uuid.UUID) (int, error)
	RecountLikesFunc        func(ctx context.Context) (int, error)
	RecountCommentsFunc     func(ctx context.Context) (int, error)

	calls struct {
		AdjustLikesCount []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Delta int
		}
		AdjustCommentsCount []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Delta int
		}
	}
	lock sync.RWMutex
}

func (mock *postRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if mock.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but postRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *postRepoMock) AdjustLikesCount(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	if mock.AdjustLikesCountFunc == nil {
		panic("postRepoMock.AdjustLikesCountFunc: method is nil but postRepo.AdjustLikesCount was just called")
	}
	mock.lock.Lock()
	mock.calls.AdjustLikesCount = append(mock.calls.AdjustLikesCount, struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta int
	}{ctx, id, delta})
	mock.lock.Unlock()
	return mock.AdjustLikesCountFunc(ctx, id, delta)
}

func (mock *postRepoMock) AdjustLikesCountCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdjustLikesCount
}

func (mock *postRepoMock) AdjustCommentsCount(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	if mock.AdjustCommentsCountFunc == nil {
		panic("postRepoMock.AdjustCommentsCountFunc: method is nil but postRepo.AdjustCommentsCount was just called")
	}
	mock.lock.Lock()
	mock.calls.AdjustCommentsCount = append(mock.calls.AdjustCommentsCount, struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta int
	}{ctx, id, delta})
	mock.lock.Unlock()
	return mock.AdjustCommentsCountFunc(ctx, id, delta)
}

func (mock *postRepoMock) AdjustCommentsCountCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdjustCommentsCount
}

func (mock *postRepoMock) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	if mock.IncrementViewsFunc == nil {
		panic("postRepoMock.IncrementViewsFunc: method is nil but postRepo.IncrementViews was just called")
	}
	return mock.IncrementViewsFunc(ctx, id)
}

func (mock *postRepoMock) IncrementShares(ctx context.Context, id uuid.UUID) (int, error) {
	if mock.IncrementSharesFunc == nil {
		panic("postRepoMock.IncrementSharesFunc: method is nil but postRepo.IncrementShares was just called")
	}
	return mock.IncrementSharesFunc(ctx, id)
}

func (mock *postRepoMock) RecountLikes(ctx context.Context) (int, error) {
	if mock.RecountLikesFunc == nil {
		panic("postRepoMock.RecountLikesFunc: method is nil but postRepo.RecountLikes was just called")
	}
	return mock.RecountLikesFunc(ctx)
}

func (mock *postRepoMock) RecountComments(ctx context.Context) (int, error) {
	if mock.RecountCommentsFunc == nil {
		panic("postRepoMock.RecountCommentsFunc: method is nil but postRepo.RecountComments was just called")
	}
	return mock.RecountCommentsFunc(ctx)
}

var _ businessRepo = &businessRepoMock{}

type businessRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	AdjustFollowersCountFunc func(ctx context.Context, id uuid.UUID, delta int) (int, error)
	RecountFollowersFunc     func(ctx context.Context) (int, error)
	RecountPostsFunc         func(ctx context.Context) (int, error)

	calls struct {
		AdjustFollowersCount []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Delta int
		}
	}
	lock sync.RWMutex
}

func (mock *businessRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	if mock.GetByIDFunc == nil {
		panic("businessRepoMock.GetByIDFunc: method is nil but businessRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *businessRepoMock) AdjustFollowersCount(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	if mock.AdjustFollowersCountFunc == nil {
		panic("businessRepoMock.AdjustFollowersCountFunc: method is nil but businessRepo.AdjustFollowersCount was just called")
	}
	mock.lock.Lock()
	mock.calls.AdjustFollowersCount = append(mock.calls.AdjustFollowersCount, struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta int
	}{ctx, id, delta})
	mock.lock.Unlock()
	return mock.AdjustFollowersCountFunc(ctx, id, delta)
}

func (mock *businessRepoMock) AdjustFollowersCountCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdjustFollowersCount
}

func (mock *businessRepoMock) RecountFollowers(ctx context.Context) (int, error) {
	if mock.RecountFollowersFunc == nil {
		panic("businessRepoMock.RecountFollowersFunc: method is nil but businessRepo.RecountFollowers was just called")
	}
	return mock.RecountFollowersFunc(ctx)
}

func (mock *businessRepoMock) RecountPosts(ctx context.Context) (int, error) {
	if mock.RecountPostsFunc == nil {
		panic("businessRepoMock.RecountPostsFunc: method is nil but businessRepo.RecountPosts was just called")
	}
	return mock.RecountPostsFunc(ctx)
}

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CreateFunc func(ctx context.Context, n *domain.Notification) error

	calls struct {
		Create []struct {
			Ctx context.Context
			N   *domain.Notification
		}
	}
	lock sync.RWMutex
}

func (mock *notificationRepoMock) Create(ctx context.Context, n *domain.Notification) error {
	if mock.CreateFunc == nil {
		panic("notificationRepoMock.CreateFunc: method is nil but notificationRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		N   *domain.Notification
	}{ctx, n})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *notificationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	N   *domain.Notification
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

var _ txManager = &txManagerMock{}

type txManagerMock struct{}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
