package post

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	CreateFunc  func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	UpdateFunc  func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Post
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *postRepoMock) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if mock.CreateFunc == nil {
		panic("postRepoMock.CreateFunc: method is nil but postRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		P   *domain.Post
	}{ctx, p})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *postRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Post
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *postRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if mock.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but postRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *postRepoMock) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if mock.UpdateFunc == nil {
		panic("postRepoMock.UpdateFunc: method is nil but postRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, p)
}

func (mock *postRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("postRepoMock.DeleteFunc: method is nil but postRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{ctx, id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *postRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ businessRepo = &businessRepoMock{}

type businessRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	AdjustPostsCountFunc func(ctx context.Context, id uuid.UUID, delta int) (int, error)

	calls struct {
		AdjustPostsCount []struct {
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

func (mock *businessRepoMock) AdjustPostsCount(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	if mock.AdjustPostsCountFunc == nil {
		panic("businessRepoMock.AdjustPostsCountFunc: method is nil but businessRepo.AdjustPostsCount was just called")
	}
	mock.lock.Lock()
	mock.calls.AdjustPostsCount = append(mock.calls.AdjustPostsCount, struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta int
	}{ctx, id, delta})
	mock.lock.Unlock()
	return mock.AdjustPostsCountFunc(ctx, id, delta)
}

func (mock *businessRepoMock) AdjustPostsCountCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdjustPostsCount
}

var _ followRepo = &followRepoMock{}

type followRepoMock struct {
	ListFollowerIDsByBusinessFunc func(ctx context.Context, businessID uuid.UUID) ([]uuid.UUID, error)
}

func (mock *followRepoMock) ListFollowerIDsByBusiness(ctx context.Context, businessID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListFollowerIDsByBusinessFunc == nil {
		panic("followRepoMock.ListFollowerIDsByBusinessFunc: method is nil but followRepo.ListFollowerIDsByBusiness was just called")
	}
	return mock.ListFollowerIDsByBusinessFunc(ctx, businessID)
}

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CreateBatchFunc func(ctx context.Context, notifications []domain.Notification) error

	calls struct {
		CreateBatch []struct {
			Ctx           context.Context
			Notifications []domain.Notification
		}
	}
	lock sync.RWMutex
}

func (mock *notificationRepoMock) CreateBatch(ctx context.Context, notifications []domain.Notification) error {
	if mock.CreateBatchFunc == nil {
		panic("notificationRepoMock.CreateBatchFunc: method is nil but notificationRepo.CreateBatch was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, struct {
		Ctx           context.Context
		Notifications []domain.Notification
	}{ctx, notifications})
	mock.lock.Unlock()
	return mock.CreateBatchFunc(ctx, notifications)
}

func (mock *notificationRepoMock) CreateBatchCalls() []struct {
	Ctx           context.Context
	Notifications []domain.Notification
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateBatch
}

var _ txManager = &txManagerMock{}

type txManagerMock struct{}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
