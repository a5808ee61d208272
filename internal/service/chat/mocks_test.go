package chat

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

var _ chatRepo = &chatRepoMock{}

type chatRepoMock struct {
	CreateFunc               func(ctx context.Context, c *domain.Chat) (*domain.Chat, error)
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Chat, error)
	ListByUserFunc           func(ctx context.Context, userID uuid.UUID) ([]domain.Chat, error)
	FindUserBusinessChatFunc func(ctx context.Context, userID, businessID uuid.UUID) (*domain.Chat, error)
	TouchFunc                func(ctx context.Context, id uuid.UUID) error
	CreateMessageFunc        func(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListMessagesFunc         func(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]domain.Message, error)
	MarkMessagesReadFunc     func(ctx context.Context, chatID, readerID uuid.UUID) (int, error)
	CountUnreadFunc          func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Chat
		}
		Touch []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkMessagesRead []struct {
			Ctx      context.Context
			ChatID   uuid.UUID
			ReaderID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *chatRepoMock) Create(ctx context.Context, c *domain.Chat) (*domain.Chat, error) {
	if mock.CreateFunc == nil {
		panic("chatRepoMock.CreateFunc: method is nil but chatRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		C   *domain.Chat
	}{ctx, c})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *chatRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Chat
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *chatRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Chat, error) {
	if mock.GetByIDFunc == nil {
		panic("chatRepoMock.GetByIDFunc: method is nil but chatRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *chatRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Chat, error) {
	if mock.ListByUserFunc == nil {
		panic("chatRepoMock.ListByUserFunc: method is nil but chatRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *chatRepoMock) FindUserBusinessChat(ctx context.Context, userID, businessID uuid.UUID) (*domain.Chat, error) {
	if mock.FindUserBusinessChatFunc == nil {
		panic("chatRepoMock.FindUserBusinessChatFunc: method is nil but chatRepo.FindUserBusinessChat was just called")
	}
	return mock.FindUserBusinessChatFunc(ctx, userID, businessID)
}

func (mock *chatRepoMock) Touch(ctx context.Context, id uuid.UUID) error {
	if mock.TouchFunc == nil {
		panic("chatRepoMock.TouchFunc: method is nil but chatRepo.Touch was just called")
	}
	mock.lock.Lock()
	mock.calls.Touch = append(mock.calls.Touch, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{ctx, id})
	mock.lock.Unlock()
	return mock.TouchFunc(ctx, id)
}

func (mock *chatRepoMock) TouchCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Touch
}

func (mock *chatRepoMock) CreateMessage(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	if mock.CreateMessageFunc == nil {
		panic("chatRepoMock.CreateMessageFunc: method is nil but chatRepo.CreateMessage was just called")
	}
	return mock.CreateMessageFunc(ctx, m)
}

func (mock *chatRepoMock) ListMessages(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]domain.Message, error) {
	if mock.ListMessagesFunc == nil {
		panic("chatRepoMock.ListMessagesFunc: method is nil but chatRepo.ListMessages was just called")
	}
	return mock.ListMessagesFunc(ctx, chatID, limit, offset)
}

func (mock *chatRepoMock) MarkMessagesRead(ctx context.Context, chatID, readerID uuid.UUID) (int, error) {
	if mock.MarkMessagesReadFunc == nil {
		panic("chatRepoMock.MarkMessagesReadFunc: method is nil but chatRepo.MarkMessagesRead was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkMessagesRead = append(mock.calls.MarkMessagesRead, struct {
		Ctx      context.Context
		ChatID   uuid.UUID
		ReaderID uuid.UUID
	}{ctx, chatID, readerID})
	mock.lock.Unlock()
	return mock.MarkMessagesReadFunc(ctx, chatID, readerID)
}

func (mock *chatRepoMock) MarkMessagesReadCalls() []struct {
	Ctx      context.Context
	ChatID   uuid.UUID
	ReaderID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkMessagesRead
}

func (mock *chatRepoMock) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("chatRepoMock.CountUnreadFunc: method is nil but chatRepo.CountUnread was just called")
	}
	return mock.CountUnreadFunc(ctx, userID)
}

var _ businessRepo = &businessRepoMock{}

type businessRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

func (mock *businessRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	if mock.GetByIDFunc == nil {
		panic("businessRepoMock.GetByIDFunc: method is nil but businessRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
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
