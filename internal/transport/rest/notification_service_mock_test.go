package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/notification"
)

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	GetPreferencesFunc                   func(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreference, error)
	SendTestNotificationFunc             func(ctx context.Context, userID uuid.UUID) (*notification.TestResult, error)
	TriggerExpiringItemsNotificationFunc func(ctx context.Context, userID uuid.UUID, input notification.TriggerInput) (*notification.TriggerResult, error)
	TriggerWeeklySummaryFunc             func(ctx context.Context, userID uuid.UUID) (*notification.TriggerResult, error)
	UpdatePreferencesFunc                func(ctx context.Context, userID uuid.UUID, input notification.UpdatePreferencesInput) (*domain.NotificationPreference, error)

	calls struct {
		GetPreferences []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		SendTestNotification []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		TriggerExpiringItemsNotification []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  notification.TriggerInput
		}
		TriggerWeeklySummary []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdatePreferences []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  notification.UpdatePreferencesInput
		}
	}
	lockGetPreferences                   sync.RWMutex
	lockSendTestNotification             sync.RWMutex
	lockTriggerExpiringItemsNotification sync.RWMutex
	lockTriggerWeeklySummary             sync.RWMutex
	lockUpdatePreferences                sync.RWMutex
}

func (mock *notificationServiceMock) GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreference, error) {
	if mock.GetPreferencesFunc == nil {
		panic("notificationServiceMock.GetPreferencesFunc: method is nil but notificationService.GetPreferences was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetPreferences.Lock()
	mock.calls.GetPreferences = append(mock.calls.GetPreferences, callInfo)
	mock.lockGetPreferences.Unlock()
	return mock.GetPreferencesFunc(ctx, userID)
}

func (mock *notificationServiceMock) GetPreferencesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetPreferences.RLock()
	calls := mock.calls.GetPreferences
	mock.lockGetPreferences.RUnlock()
	return calls
}

func (mock *notificationServiceMock) SendTestNotification(ctx context.Context, userID uuid.UUID) (*notification.TestResult, error) {
	if mock.SendTestNotificationFunc == nil {
		panic("notificationServiceMock.SendTestNotificationFunc: method is nil but notificationService.SendTestNotification was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockSendTestNotification.Lock()
	mock.calls.SendTestNotification = append(mock.calls.SendTestNotification, callInfo)
	mock.lockSendTestNotification.Unlock()
	return mock.SendTestNotificationFunc(ctx, userID)
}

func (mock *notificationServiceMock) SendTestNotificationCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockSendTestNotification.RLock()
	calls := mock.calls.SendTestNotification
	mock.lockSendTestNotification.RUnlock()
	return calls
}

func (mock *notificationServiceMock) TriggerExpiringItemsNotification(ctx context.Context, userID uuid.UUID, input notification.TriggerInput) (*notification.TriggerResult, error) {
	if mock.TriggerExpiringItemsNotificationFunc == nil {
		panic("notificationServiceMock.TriggerExpiringItemsNotificationFunc: method is nil but notificationService.TriggerExpiringItemsNotification was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  notification.TriggerInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockTriggerExpiringItemsNotification.Lock()
	mock.calls.TriggerExpiringItemsNotification = append(mock.calls.TriggerExpiringItemsNotification, callInfo)
	mock.lockTriggerExpiringItemsNotification.Unlock()
	return mock.TriggerExpiringItemsNotificationFunc(ctx, userID, input)
}

func (mock *notificationServiceMock) TriggerExpiringItemsNotificationCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  notification.TriggerInput
} {
	mock.lockTriggerExpiringItemsNotification.RLock()
	calls := mock.calls.TriggerExpiringItemsNotification
	mock.lockTriggerExpiringItemsNotification.RUnlock()
	return calls
}

func (mock *notificationServiceMock) TriggerWeeklySummary(ctx context.Context, userID uuid.UUID) (*notification.TriggerResult, error) {
	if mock.TriggerWeeklySummaryFunc == nil {
		panic("notificationServiceMock.TriggerWeeklySummaryFunc: method is nil but notificationService.TriggerWeeklySummary was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockTriggerWeeklySummary.Lock()
	mock.calls.TriggerWeeklySummary = append(mock.calls.TriggerWeeklySummary, callInfo)
	mock.lockTriggerWeeklySummary.Unlock()
	return mock.TriggerWeeklySummaryFunc(ctx, userID)
}

func (mock *notificationServiceMock) TriggerWeeklySummaryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockTriggerWeeklySummary.RLock()
	calls := mock.calls.TriggerWeeklySummary
	mock.lockTriggerWeeklySummary.RUnlock()
	return calls
}

func (mock *notificationServiceMock) UpdatePreferences(ctx context.Context, userID uuid.UUID, input notification.UpdatePreferencesInput) (*domain.NotificationPreference, error) {
	if mock.UpdatePreferencesFunc == nil {
		panic("notificationServiceMock.UpdatePreferencesFunc: method is nil but notificationService.UpdatePreferences was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  notification.UpdatePreferencesInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockUpdatePreferences.Lock()
	mock.calls.UpdatePreferences = append(mock.calls.UpdatePreferences, callInfo)
	mock.lockUpdatePreferences.Unlock()
	return mock.UpdatePreferencesFunc(ctx, userID, input)
}

func (mock *notificationServiceMock) UpdatePreferencesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  notification.UpdatePreferencesInput
} {
	mock.lockUpdatePreferences.RLock()
	calls := mock.calls.UpdatePreferences
	mock.lockUpdatePreferences.RUnlock()
	return calls
}
