package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	ListFunc   func(ctx context.Context, viewerID *uuid.UUID, filter domain.PostFilter) ([]domain.Post, error)
	SearchFunc func(ctx context.Context, search string, townName *string, limit int) ([]domain.Post, error)

	calls struct {
		List []struct {
			Ctx      context.Context
			ViewerID *uuid.UUID
			Filter   domain.PostFilter
		}
	}
	lock sync.RWMutex
}

func (mock *postRepoMock) List(ctx context.Context, viewerID *uuid.UUID, filter domain.PostFilter) ([]domain.Post, error) {
	if mock.ListFunc == nil {
		panic("postRepoMock.ListFunc: method is nil but postRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx      context.Context
		ViewerID *uuid.UUID
		Filter   domain.PostFilter
	}{ctx, viewerID, filter})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, viewerID, filter)
}

func (mock *postRepoMock) ListCalls() []struct {
	Ctx      context.Context
	ViewerID *uuid.UUID
	Filter   domain.PostFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *postRepoMock) Search(ctx context.Context, search string, townName *string, limit int) ([]domain.Post, error) {
	if mock.SearchFunc == nil {
		panic("postRepoMock.SearchFunc: method is nil but postRepo.Search was just called")
	}
	return mock.SearchFunc(ctx, search, townName, limit)
}

var _ businessRepo = &businessRepoMock{}

type businessRepoMock struct {
	SearchFunc func(ctx context.Context, search string, townName *string, limit int) ([]domain.Business, error)
}

func (mock *businessRepoMock) Search(ctx context.Context, search string, townName *string, limit int) ([]domain.Business, error) {
	if mock.SearchFunc == nil {
		panic("businessRepoMock.SearchFunc: method is nil but businessRepo.Search was just called")
	}
	return mock.SearchFunc(ctx, search, townName, limit)
}
