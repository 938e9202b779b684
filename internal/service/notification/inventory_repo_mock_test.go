package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

var _ inventoryRepo = &inventoryRepoMock{}

type inventoryRepoMock struct {
	AllItemsFunc      func(ctx context.Context, userID uuid.UUID) ([]domain.PerishableItem, error)
	ExpiringItemsFunc func(ctx context.Context, userID uuid.UUID, daysThreshold int, today time.Time) ([]domain.PerishableItem, error)

	calls struct {
		AllItems []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ExpiringItems []struct {
			Ctx           context.Context
			UserID        uuid.UUID
			DaysThreshold int
			Today         time.Time
		}
	}
	lockAllItems      sync.RWMutex
	lockExpiringItems sync.RWMutex
}

func (mock *inventoryRepoMock) AllItems(ctx context.Context, userID uuid.UUID) ([]domain.PerishableItem, error) {
	if mock.AllItemsFunc == nil {
		panic("inventoryRepoMock.AllItemsFunc: method is nil but inventoryRepo.AllItems was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockAllItems.Lock()
	mock.calls.AllItems = append(mock.calls.AllItems, callInfo)
	mock.lockAllItems.Unlock()
	return mock.AllItemsFunc(ctx, userID)
}

func (mock *inventoryRepoMock) AllItemsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockAllItems.RLock()
	calls := mock.calls.AllItems
	mock.lockAllItems.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) ExpiringItems(ctx context.Context, userID uuid.UUID, daysThreshold int, today time.Time) ([]domain.PerishableItem, error) {
	if mock.ExpiringItemsFunc == nil {
		panic("inventoryRepoMock.ExpiringItemsFunc: method is nil but inventoryRepo.ExpiringItems was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		UserID        uuid.UUID
		DaysThreshold int
		Today         time.Time
	}{Ctx: ctx, UserID: userID, DaysThreshold: daysThreshold, Today: today}
	mock.lockExpiringItems.Lock()
	mock.calls.ExpiringItems = append(mock.calls.ExpiringItems, callInfo)
	mock.lockExpiringItems.Unlock()
	return mock.ExpiringItemsFunc(ctx, userID, daysThreshold, today)
}

func (mock *inventoryRepoMock) ExpiringItemsCalls() []struct {
	Ctx           context.Context
	UserID        uuid.UUID
	DaysThreshold int
	Today         time.Time
} {
	mock.lockExpiringItems.RLock()
	calls := mock.calls.ExpiringItems
	mock.lockExpiringItems.RUnlock()
	return calls
}
