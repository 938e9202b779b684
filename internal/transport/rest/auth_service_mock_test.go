package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	CompleteRegistrationFunc func(ctx context.Context, input auth.VerifyInput) (*auth.AuthResult, error)
	ConfirmPasswordResetFunc func(ctx context.Context, input auth.ResetConfirmInput) (uuid.UUID, error)
	RequestPasswordResetFunc func(ctx context.Context, input auth.ResetRequestInput) error
	StartRegistrationFunc    func(ctx context.Context, input auth.RegisterInput) (*auth.CodeSentResult, error)

	calls struct {
		CompleteRegistration []struct {
			Ctx   context.Context
			Input auth.VerifyInput
		}
		ConfirmPasswordReset []struct {
			Ctx   context.Context
			Input auth.ResetConfirmInput
		}
		RequestPasswordReset []struct {
			Ctx   context.Context
			Input auth.ResetRequestInput
		}
		StartRegistration []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
	}
	lockCompleteRegistration sync.RWMutex
	lockConfirmPasswordReset sync.RWMutex
	lockRequestPasswordReset sync.RWMutex
	lockStartRegistration    sync.RWMutex
}

func (mock *authServiceMock) CompleteRegistration(ctx context.Context, input auth.VerifyInput) (*auth.AuthResult, error) {
	if mock.CompleteRegistrationFunc == nil {
		panic("authServiceMock.CompleteRegistrationFunc: method is nil but authService.CompleteRegistration was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.VerifyInput
	}{Ctx: ctx, Input: input}
	mock.lockCompleteRegistration.Lock()
	mock.calls.CompleteRegistration = append(mock.calls.CompleteRegistration, callInfo)
	mock.lockCompleteRegistration.Unlock()
	return mock.CompleteRegistrationFunc(ctx, input)
}

func (mock *authServiceMock) CompleteRegistrationCalls() []struct {
	Ctx   context.Context
	Input auth.VerifyInput
} {
	mock.lockCompleteRegistration.RLock()
	calls := mock.calls.CompleteRegistration
	mock.lockCompleteRegistration.RUnlock()
	return calls
}

func (mock *authServiceMock) ConfirmPasswordReset(ctx context.Context, input auth.ResetConfirmInput) (uuid.UUID, error) {
	if mock.ConfirmPasswordResetFunc == nil {
		panic("authServiceMock.ConfirmPasswordResetFunc: method is nil but authService.ConfirmPasswordReset was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ResetConfirmInput
	}{Ctx: ctx, Input: input}
	mock.lockConfirmPasswordReset.Lock()
	mock.calls.ConfirmPasswordReset = append(mock.calls.ConfirmPasswordReset, callInfo)
	mock.lockConfirmPasswordReset.Unlock()
	return mock.ConfirmPasswordResetFunc(ctx, input)
}

func (mock *authServiceMock) ConfirmPasswordResetCalls() []struct {
	Ctx   context.Context
	Input auth.ResetConfirmInput
} {
	mock.lockConfirmPasswordReset.RLock()
	calls := mock.calls.ConfirmPasswordReset
	mock.lockConfirmPasswordReset.RUnlock()
	return calls
}

func (mock *authServiceMock) RequestPasswordReset(ctx context.Context, input auth.ResetRequestInput) error {
	if mock.RequestPasswordResetFunc == nil {
		panic("authServiceMock.RequestPasswordResetFunc: method is nil but authService.RequestPasswordReset was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ResetRequestInput
	}{Ctx: ctx, Input: input}
	mock.lockRequestPasswordReset.Lock()
	mock.calls.RequestPasswordReset = append(mock.calls.RequestPasswordReset, callInfo)
	mock.lockRequestPasswordReset.Unlock()
	return mock.RequestPasswordResetFunc(ctx, input)
}

func (mock *authServiceMock) RequestPasswordResetCalls() []struct {
	Ctx   context.Context
	Input auth.ResetRequestInput
} {
	mock.lockRequestPasswordReset.RLock()
	calls := mock.calls.RequestPasswordReset
	mock.lockRequestPasswordReset.RUnlock()
	return calls
}

func (mock *authServiceMock) StartRegistration(ctx context.Context, input auth.RegisterInput) (*auth.CodeSentResult, error) {
	if mock.StartRegistrationFunc == nil {
		panic("authServiceMock.StartRegistrationFunc: method is nil but authService.StartRegistration was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockStartRegistration.Lock()
	mock.calls.StartRegistration = append(mock.calls.StartRegistration, callInfo)
	mock.lockStartRegistration.Unlock()
	return mock.StartRegistrationFunc(ctx, input)
}

func (mock *authServiceMock) StartRegistrationCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockStartRegistration.RLock()
	calls := mock.calls.StartRegistration
	mock.lockStartRegistration.RUnlock()
	return calls
}
