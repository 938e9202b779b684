package auth

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/delivery"
)

var _ mailer = &mailerMock{}

type mailerMock struct {
	SendVerificationCodeFunc func(ctx context.Context, to string, code string, purpose domain.VerificationPurpose, ttl time.Duration) (delivery.Outcome, error)

	calls struct {
		SendVerificationCode []struct {
			Ctx     context.Context
			To      string
			Code    string
			Purpose domain.VerificationPurpose
			Ttl     time.Duration
		}
	}
	lockSendVerificationCode sync.RWMutex
}

func (mock *mailerMock) SendVerificationCode(ctx context.Context, to string, code string, purpose domain.VerificationPurpose, ttl time.Duration) (delivery.Outcome, error) {
	if mock.SendVerificationCodeFunc == nil {
		panic("mailerMock.SendVerificationCodeFunc: method is nil but mailer.SendVerificationCode was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		To      string
		Code    string
		Purpose domain.VerificationPurpose
		Ttl     time.Duration
	}{Ctx: ctx, To: to, Code: code, Purpose: purpose, Ttl: ttl}
	mock.lockSendVerificationCode.Lock()
	mock.calls.SendVerificationCode = append(mock.calls.SendVerificationCode, callInfo)
	mock.lockSendVerificationCode.Unlock()
	return mock.SendVerificationCodeFunc(ctx, to, code, purpose, ttl)
}

func (mock *mailerMock) SendVerificationCodeCalls() []struct {
	Ctx     context.Context
	To      string
	Code    string
	Purpose domain.VerificationPurpose
	Ttl     time.Duration
} {
	mock.lockSendVerificationCode.RLock()
	calls := mock.calls.SendVerificationCode
	mock.lockSendVerificationCode.RUnlock()
	return calls
}
