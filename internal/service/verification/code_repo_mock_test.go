package verification

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

var _ codeRepo = &codeRepoMock{}

type codeRepoMock struct {
	ConsumeFunc           func(ctx context.Context, email string, code string, now time.Time, maxAttempts int) (string, error)
	CreateFunc            func(ctx context.Context, c *domain.VerificationCode) error
	DeleteByEmailFunc     func(ctx context.Context, email string) error
	DeleteStaleFunc       func(ctx context.Context, now time.Time) (int, error)
	IncrementAttemptsFunc func(ctx context.Context, email string, now time.Time) error

	calls struct {
		Consume []struct {
			Ctx         context.Context
			Email       string
			Code        string
			Now         time.Time
			MaxAttempts int
		}
		Create []struct {
			Ctx context.Context
			C   *domain.VerificationCode
		}
		DeleteByEmail []struct {
			Ctx   context.Context
			Email string
		}
		DeleteStale []struct {
			Ctx context.Context
			Now time.Time
		}
		IncrementAttempts []struct {
			Ctx   context.Context
			Email string
			Now   time.Time
		}
	}
	lockConsume           sync.RWMutex
	lockCreate            sync.RWMutex
	lockDeleteByEmail     sync.RWMutex
	lockDeleteStale       sync.RWMutex
	lockIncrementAttempts sync.RWMutex
}

func (mock *codeRepoMock) Consume(ctx context.Context, email string, code string, now time.Time, maxAttempts int) (string, error) {
	if mock.ConsumeFunc == nil {
		panic("codeRepoMock.ConsumeFunc: method is nil but codeRepo.Consume was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Email       string
		Code        string
		Now         time.Time
		MaxAttempts int
	}{Ctx: ctx, Email: email, Code: code, Now: now, MaxAttempts: maxAttempts}
	mock.lockConsume.Lock()
	mock.calls.Consume = append(mock.calls.Consume, callInfo)
	mock.lockConsume.Unlock()
	return mock.ConsumeFunc(ctx, email, code, now, maxAttempts)
}

func (mock *codeRepoMock) ConsumeCalls() []struct {
	Ctx         context.Context
	Email       string
	Code        string
	Now         time.Time
	MaxAttempts int
} {
	mock.lockConsume.RLock()
	calls := mock.calls.Consume
	mock.lockConsume.RUnlock()
	return calls
}

func (mock *codeRepoMock) Create(ctx context.Context, c *domain.VerificationCode) error {
	if mock.CreateFunc == nil {
		panic("codeRepoMock.CreateFunc: method is nil but codeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.VerificationCode
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *codeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.VerificationCode
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *codeRepoMock) DeleteByEmail(ctx context.Context, email string) error {
	if mock.DeleteByEmailFunc == nil {
		panic("codeRepoMock.DeleteByEmailFunc: method is nil but codeRepo.DeleteByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockDeleteByEmail.Lock()
	mock.calls.DeleteByEmail = append(mock.calls.DeleteByEmail, callInfo)
	mock.lockDeleteByEmail.Unlock()
	return mock.DeleteByEmailFunc(ctx, email)
}

func (mock *codeRepoMock) DeleteByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockDeleteByEmail.RLock()
	calls := mock.calls.DeleteByEmail
	mock.lockDeleteByEmail.RUnlock()
	return calls
}

func (mock *codeRepoMock) DeleteStale(ctx context.Context, now time.Time) (int, error) {
	if mock.DeleteStaleFunc == nil {
		panic("codeRepoMock.DeleteStaleFunc: method is nil but codeRepo.DeleteStale was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockDeleteStale.Lock()
	mock.calls.DeleteStale = append(mock.calls.DeleteStale, callInfo)
	mock.lockDeleteStale.Unlock()
	return mock.DeleteStaleFunc(ctx, now)
}

func (mock *codeRepoMock) DeleteStaleCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockDeleteStale.RLock()
	calls := mock.calls.DeleteStale
	mock.lockDeleteStale.RUnlock()
	return calls
}

func (mock *codeRepoMock) IncrementAttempts(ctx context.Context, email string, now time.Time) error {
	if mock.IncrementAttemptsFunc == nil {
		panic("codeRepoMock.IncrementAttemptsFunc: method is nil but codeRepo.IncrementAttempts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Now   time.Time
	}{Ctx: ctx, Email: email, Now: now}
	mock.lockIncrementAttempts.Lock()
	mock.calls.IncrementAttempts = append(mock.calls.IncrementAttempts, callInfo)
	mock.lockIncrementAttempts.Unlock()
	return mock.IncrementAttemptsFunc(ctx, email, now)
}

func (mock *codeRepoMock) IncrementAttemptsCalls() []struct {
	Ctx   context.Context
	Email string
	Now   time.Time
} {
	mock.lockIncrementAttempts.RLock()
	calls := mock.calls.IncrementAttempts
	mock.lockIncrementAttempts.RUnlock()
	return calls
}
