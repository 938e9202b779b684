package notification

import (
	"context"
	"sync"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/delivery"
)

var _ gateway = &gatewayMock{}

type gatewayMock struct {
	SendExpirationDigestFunc func(ctx context.Context, to string, expired []domain.ItemStatus, expiringSoon []domain.ItemStatus) (delivery.Outcome, error)
	SendGenericMessageFunc   func(ctx context.Context, to string, subject string, text string, html string) (delivery.Outcome, error)
	SendWeeklySummaryFunc    func(ctx context.Context, to string, items []domain.ItemStatus) (delivery.Outcome, error)

	calls struct {
		SendExpirationDigest []struct {
			Ctx          context.Context
			To           string
			Expired      []domain.ItemStatus
			ExpiringSoon []domain.ItemStatus
		}
		SendGenericMessage []struct {
			Ctx     context.Context
			To      string
			Subject string
			Text    string
			Html    string
		}
		SendWeeklySummary []struct {
			Ctx   context.Context
			To    string
			Items []domain.ItemStatus
		}
	}
	lockSendExpirationDigest sync.RWMutex
	lockSendGenericMessage   sync.RWMutex
	lockSendWeeklySummary    sync.RWMutex
}

func (mock *gatewayMock) SendExpirationDigest(ctx context.Context, to string, expired []domain.ItemStatus, expiringSoon []domain.ItemStatus) (delivery.Outcome, error) {
	if mock.SendExpirationDigestFunc == nil {
		panic("gatewayMock.SendExpirationDigestFunc: method is nil but gateway.SendExpirationDigest was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		To           string
		Expired      []domain.ItemStatus
		ExpiringSoon []domain.ItemStatus
	}{Ctx: ctx, To: to, Expired: expired, ExpiringSoon: expiringSoon}
	mock.lockSendExpirationDigest.Lock()
	mock.calls.SendExpirationDigest = append(mock.calls.SendExpirationDigest, callInfo)
	mock.lockSendExpirationDigest.Unlock()
	return mock.SendExpirationDigestFunc(ctx, to, expired, expiringSoon)
}

func (mock *gatewayMock) SendExpirationDigestCalls() []struct {
	Ctx          context.Context
	To           string
	Expired      []domain.ItemStatus
	ExpiringSoon []domain.ItemStatus
} {
	mock.lockSendExpirationDigest.RLock()
	calls := mock.calls.SendExpirationDigest
	mock.lockSendExpirationDigest.RUnlock()
	return calls
}

func (mock *gatewayMock) SendGenericMessage(ctx context.Context, to string, subject string, text string, html string) (delivery.Outcome, error) {
	if mock.SendGenericMessageFunc == nil {
		panic("gatewayMock.SendGenericMessageFunc: method is nil but gateway.SendGenericMessage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		To      string
		Subject string
		Text    string
		Html    string
	}{Ctx: ctx, To: to, Subject: subject, Text: text, Html: html}
	mock.lockSendGenericMessage.Lock()
	mock.calls.SendGenericMessage = append(mock.calls.SendGenericMessage, callInfo)
	mock.lockSendGenericMessage.Unlock()
	return mock.SendGenericMessageFunc(ctx, to, subject, text, html)
}

func (mock *gatewayMock) SendGenericMessageCalls() []struct {
	Ctx     context.Context
	To      string
	Subject string
	Text    string
	Html    string
} {
	mock.lockSendGenericMessage.RLock()
	calls := mock.calls.SendGenericMessage
	mock.lockSendGenericMessage.RUnlock()
	return calls
}

func (mock *gatewayMock) SendWeeklySummary(ctx context.Context, to string, items []domain.ItemStatus) (delivery.Outcome, error) {
	if mock.SendWeeklySummaryFunc == nil {
		panic("gatewayMock.SendWeeklySummaryFunc: method is nil but gateway.SendWeeklySummary was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		To    string
		Items []domain.ItemStatus
	}{Ctx: ctx, To: to, Items: items}
	mock.lockSendWeeklySummary.Lock()
	mock.calls.SendWeeklySummary = append(mock.calls.SendWeeklySummary, callInfo)
	mock.lockSendWeeklySummary.Unlock()
	return mock.SendWeeklySummaryFunc(ctx, to, items)
}

func (mock *gatewayMock) SendWeeklySummaryCalls() []struct {
	Ctx   context.Context
	To    string
	Items []domain.ItemStatus
} {
	mock.lockSendWeeklySummary.RLock()
	calls := mock.calls.SendWeeklySummary
	mock.lockSendWeeklySummary.RUnlock()
	return calls
}
