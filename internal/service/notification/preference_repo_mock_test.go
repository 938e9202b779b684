package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

var _ preferenceRepo = &preferenceRepoMock{}

type preferenceRepoMock struct {
	GetOrCreateDefaultFunc func(ctx context.Context, userID uuid.UUID, accountEmail string) (*domain.NotificationPreference, error)
	ListMatchingFunc       func(ctx context.Context, f domain.PreferenceFilter) ([]domain.NotificationPreference, error)
	UpdateFunc             func(ctx context.Context, p *domain.NotificationPreference) (*domain.NotificationPreference, error)
	UpdateLastNotifiedFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		GetOrCreateDefault []struct {
			Ctx          context.Context
			UserID       uuid.UUID
			AccountEmail string
		}
		ListMatching []struct {
			Ctx context.Context
			F   domain.PreferenceFilter
		}
		Update []struct {
			Ctx context.Context
			P   *domain.NotificationPreference
		}
		UpdateLastNotified []struct {
			Ctx context.Context
			Id  uuid.UUID
			At  time.Time
		}
	}
	lockGetOrCreateDefault sync.RWMutex
	lockListMatching       sync.RWMutex
	lockUpdate             sync.RWMutex
	lockUpdateLastNotified sync.RWMutex
}

func (mock *preferenceRepoMock) GetOrCreateDefault(ctx context.Context, userID uuid.UUID, accountEmail string) (*domain.NotificationPreference, error) {
	if mock.GetOrCreateDefaultFunc == nil {
		panic("preferenceRepoMock.GetOrCreateDefaultFunc: method is nil but preferenceRepo.GetOrCreateDefault was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       uuid.UUID
		AccountEmail string
	}{Ctx: ctx, UserID: userID, AccountEmail: accountEmail}
	mock.lockGetOrCreateDefault.Lock()
	mock.calls.GetOrCreateDefault = append(mock.calls.GetOrCreateDefault, callInfo)
	mock.lockGetOrCreateDefault.Unlock()
	return mock.GetOrCreateDefaultFunc(ctx, userID, accountEmail)
}

func (mock *preferenceRepoMock) GetOrCreateDefaultCalls() []struct {
	Ctx          context.Context
	UserID       uuid.UUID
	AccountEmail string
} {
	mock.lockGetOrCreateDefault.RLock()
	calls := mock.calls.GetOrCreateDefault
	mock.lockGetOrCreateDefault.RUnlock()
	return calls
}

func (mock *preferenceRepoMock) ListMatching(ctx context.Context, f domain.PreferenceFilter) ([]domain.NotificationPreference, error) {
	if mock.ListMatchingFunc == nil {
		panic("preferenceRepoMock.ListMatchingFunc: method is nil but preferenceRepo.ListMatching was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PreferenceFilter
	}{Ctx: ctx, F: f}
	mock.lockListMatching.Lock()
	mock.calls.ListMatching = append(mock.calls.ListMatching, callInfo)
	mock.lockListMatching.Unlock()
	return mock.ListMatchingFunc(ctx, f)
}

func (mock *preferenceRepoMock) ListMatchingCalls() []struct {
	Ctx context.Context
	F   domain.PreferenceFilter
} {
	mock.lockListMatching.RLock()
	calls := mock.calls.ListMatching
	mock.lockListMatching.RUnlock()
	return calls
}

func (mock *preferenceRepoMock) Update(ctx context.Context, p *domain.NotificationPreference) (*domain.NotificationPreference, error) {
	if mock.UpdateFunc == nil {
		panic("preferenceRepoMock.UpdateFunc: method is nil but preferenceRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.NotificationPreference
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *preferenceRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   *domain.NotificationPreference
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *preferenceRepoMock) UpdateLastNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.UpdateLastNotifiedFunc == nil {
		panic("preferenceRepoMock.UpdateLastNotifiedFunc: method is nil but preferenceRepo.UpdateLastNotified was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		At  time.Time
	}{Ctx: ctx, Id: id, At: at}
	mock.lockUpdateLastNotified.Lock()
	mock.calls.UpdateLastNotified = append(mock.calls.UpdateLastNotified, callInfo)
	mock.lockUpdateLastNotified.Unlock()
	return mock.UpdateLastNotifiedFunc(ctx, id, at)
}

func (mock *preferenceRepoMock) UpdateLastNotifiedCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	At  time.Time
} {
	mock.lockUpdateLastNotified.RLock()
	calls := mock.calls.UpdateLastNotified
	mock.lockUpdateLastNotified.RUnlock()
	return calls
}
