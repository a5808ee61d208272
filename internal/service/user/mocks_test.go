package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc   func(ctx context.Context, username string) (*domain.User, error)
	UpdateFunc          func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdatePasswordFunc  func(ctx context.Context, id uuid.UUID, passwordHash string) error
	TouchLastActiveFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
	SetActiveFunc       func(ctx context.Context, id uuid.UUID, active bool) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		Update []struct {
			Ctx context.Context
			U   *domain.User
		}
		UpdatePassword []struct {
			Ctx          context.Context
			ID           uuid.UUID
			PasswordHash string
		}
		TouchLastActive []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		SetActive []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Active bool
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{ctx, id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, struct {
		Ctx      context.Context
		Username string
	}{ctx, username})
	mock.lock.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx context.Context
		U   *domain.User
	}{ctx, u})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, u)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, struct {
		Ctx          context.Context
		ID           uuid.UUID
		PasswordHash string
	}{ctx, id, passwordHash})
	mock.lock.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	Ctx          context.Context
	ID           uuid.UUID
	PasswordHash string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdatePassword
}

func (mock *userRepoMock) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchLastActiveFunc == nil {
		panic("userRepoMock.TouchLastActiveFunc: method is nil but userRepo.TouchLastActive was just called")
	}
	mock.lock.Lock()
	mock.calls.TouchLastActive = append(mock.calls.TouchLastActive, struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{ctx, id, at})
	mock.lock.Unlock()
	return mock.TouchLastActiveFunc(ctx, id, at)
}

func (mock *userRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if mock.SetActiveFunc == nil {
		panic("userRepoMock.SetActiveFunc: method is nil but userRepo.SetActive was just called")
	}
	mock.lock.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, struct {
		Ctx    context.Context
		ID     uuid.UUID
		Active bool
	}{ctx, id, active})
	mock.lock.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

func (mock *userRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Active bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetActive
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		RevokeAllByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RevokeAllByUserFunc == nil {
		panic("tokenRepoMock.RevokeAllByUserFunc: method is nil but tokenRepo.RevokeAllByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.RevokeAllByUser = append(mock.calls.RevokeAllByUser, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{ctx, userID})
	mock.lock.Unlock()
	return mock.RevokeAllByUserFunc(ctx, userID)
}

func (mock *tokenRepoMock) RevokeAllByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RevokeAllByUser
}

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) (bool, error)
}

func (mock *passwordHasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	return mock.HashFunc(password)
}

func (mock *passwordHasherMock) Compare(hash, password string) (bool, error) {
	if mock.CompareFunc == nil {
		panic("passwordHasherMock.CompareFunc: method is nil but passwordHasher.Compare was just called")
	}
	return mock.CompareFunc(hash, password)
}
