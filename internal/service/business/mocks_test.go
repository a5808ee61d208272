package business

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

var _ businessRepo = &businessRepoMock{}

type businessRepoMock struct {
	CreateFunc       func(ctx context.Context, b *domain.Business) (*domain.Business, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	GetBySlugFunc    func(ctx context.Context, slug string) (*domain.Business, error)
	UpdateFunc       func(ctx context.Context, b *domain.Business) (*domain.Business, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.BusinessStatus) error
	ListFunc         func(ctx context.Context, filter domain.BusinessFilter) ([]domain.Business, error)
	CountByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) (int, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) ([]domain.Business, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			B   *domain.Business
		}
		List []struct {
			Ctx    context.Context
			Filter domain.BusinessFilter
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.BusinessStatus
		}
	}
	lock sync.RWMutex
}

func (mock *businessRepoMock) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	if mock.CreateFunc == nil {
		panic("businessRepoMock.CreateFunc: method is nil but businessRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		B   *domain.Business
	}{ctx, b})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *businessRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.Business
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *businessRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	if mock.GetByIDFunc == nil {
		panic("businessRepoMock.GetByIDFunc: method is nil but businessRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *businessRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	if mock.GetBySlugFunc == nil {
		panic("businessRepoMock.GetBySlugFunc: method is nil but businessRepo.GetBySlug was just called")
	}
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *businessRepoMock) Update(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	if mock.UpdateFunc == nil {
		panic("businessRepoMock.UpdateFunc: method is nil but businessRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, b)
}

func (mock *businessRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BusinessStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("businessRepoMock.UpdateStatusFunc: method is nil but businessRepo.UpdateStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.BusinessStatus
	}{ctx, id, status})
	mock.lock.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *businessRepoMock) List(ctx context.Context, filter domain.BusinessFilter) ([]domain.Business, error) {
	if mock.ListFunc == nil {
		panic("businessRepoMock.ListFunc: method is nil but businessRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		Filter domain.BusinessFilter
	}{ctx, filter})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *businessRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.BusinessFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *businessRepoMock) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if mock.CountByOwnerFunc == nil {
		panic("businessRepoMock.CountByOwnerFunc: method is nil but businessRepo.CountByOwner was just called")
	}
	return mock.CountByOwnerFunc(ctx, ownerID)
}

func (mock *businessRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Business, error) {
	if mock.ListByOwnerFunc == nil {
		panic("businessRepoMock.ListByOwnerFunc: method is nil but businessRepo.ListByOwner was just called")
	}
	return mock.ListByOwnerFunc(ctx, ownerID)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateRoleFunc func(ctx context.Context, id uuid.UUID, role domain.UserRole) error

	calls struct {
		UpdateRole []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Role domain.UserRole
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, struct {
		Ctx  context.Context
		ID   uuid.UUID
		Role domain.UserRole
	}{ctx, id, role})
	mock.lock.Unlock()
	return mock.UpdateRoleFunc(ctx, id, role)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Role domain.UserRole
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateRole
}

var _ townRepo = &townRepoMock{}

type townRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Town, error)
}

func (mock *townRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Town, error) {
	if mock.GetByIDFunc == nil {
		panic("townRepoMock.GetByIDFunc: method is nil but townRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ analyticsRepo = &analyticsRepoMock{}

type analyticsRepoMock struct {
	IncrementProfileViewsFunc func(ctx context.Context, businessID uuid.UUID, date time.Time) error

	calls struct {
		IncrementProfileViews []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Date       time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *analyticsRepoMock) IncrementProfileViews(ctx context.Context, businessID uuid.UUID, date time.Time) error {
	if mock.IncrementProfileViewsFunc == nil {
		panic("analyticsRepoMock.IncrementProfileViewsFunc: method is nil but analyticsRepo.IncrementProfileViews was just called")
	}
	mock.lock.Lock()
	mock.calls.IncrementProfileViews = append(mock.calls.IncrementProfileViews, struct {
		Ctx        context.Context
		BusinessID uuid.UUID
		Date       time.Time
	}{ctx, businessID, date})
	mock.lock.Unlock()
	return mock.IncrementProfileViewsFunc(ctx, businessID, date)
}

func (mock *analyticsRepoMock) IncrementProfileViewsCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Date       time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.IncrementProfileViews
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the function inline so tests observe the same calls a
// real transaction would make.
type txManagerMock struct{}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
