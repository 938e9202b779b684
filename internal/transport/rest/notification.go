package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/notification"
	"github.com/heartmarshall/pantrywatch-backend/pkg/ctxutil"
)

type notificationService interface {
	SendTestNotification(ctx context.Context, userID uuid.UUID) (*notification.TestResult, error)
	TriggerExpiringItemsNotification(ctx context.Context, userID uuid.UUID, input notification.TriggerInput) (*notification.TriggerResult, error)
	TriggerWeeklySummary(ctx context.Context, userID uuid.UUID) (*notification.TriggerResult, error)
	GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreference, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input notification.UpdatePreferencesInput) (*domain.NotificationPreference, error)
}

// NotificationHandler serves the authenticated notification endpoints.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// defaultTriggerDays applies when a trigger request omits daysThreshold.
const defaultTriggerDays = domain.ExpiringSoonDays

type triggerRequest struct {
	DaysThreshold *int `json:"daysThreshold"`
}

type preferencesRequest struct {
	ExpirationAlertsEnabled *bool   `json:"expirationAlertsEnabled"`
	ExpirationFrequency     *string `json:"expirationFrequency"`
	WeeklySummaryEnabled    *bool   `json:"weeklySummaryEnabled"`
	EmailDeliveryEnabled    *bool   `json:"emailDeliveryEnabled"`
	EmailAddress            *string `json:"emailAddress"`
}

type deliveryResponse struct {
	Success      bool   `json:"success"`
	ItemCount    *int   `json:"itemCount,omitempty"`
	UsedFallback bool   `json:"usedFallback"`
	Reason       string `json:"reason,omitempty"`
}

type preferencesResponse struct {
	ExpirationAlertsEnabled bool       `json:"expirationAlertsEnabled"`
	ExpirationFrequency     string     `json:"expirationFrequency"`
	WeeklySummaryEnabled    bool       `json:"weeklySummaryEnabled"`
	EmailDeliveryEnabled    bool       `json:"emailDeliveryEnabled"`
	EmailAddress            *string    `json:"emailAddress"`
	LastNotifiedAt          *time.Time `json:"lastNotifiedAt"`
}

// SendTest handles POST /notifications/test.
func (h *NotificationHandler) SendTest(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.svc.SendTestNotification(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deliveryResponse{
		Success:      result.Success,
		UsedFallback: result.UsedFallback,
		Reason:       result.Reason,
	})
}

// TriggerExpiring handles POST /notifications/expiring.
func (h *NotificationHandler) TriggerExpiring(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req triggerRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	days := defaultTriggerDays
	if req.DaysThreshold != nil {
		days = *req.DaysThreshold
	}

	result, err := h.svc.TriggerExpiringItemsNotification(r.Context(), userID, notification.TriggerInput{DaysThreshold: days})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeliveryResponse(result))
}

// TriggerSummary handles POST /notifications/summary.
func (h *NotificationHandler) TriggerSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.svc.TriggerWeeklySummary(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeliveryResponse(result))
}

// GetPreferences handles GET /notifications/preferences.
func (h *NotificationHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	pref, err := h.svc.GetPreferences(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPreferencesResponse(pref))
}

// UpdatePreferences handles PUT /notifications/preferences.
func (h *NotificationHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req preferencesRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pref, err := h.svc.UpdatePreferences(r.Context(), userID, notification.UpdatePreferencesInput{
		ExpirationAlertsEnabled: req.ExpirationAlertsEnabled,
		ExpirationFrequency:     req.ExpirationFrequency,
		WeeklySummaryEnabled:    req.WeeklySummaryEnabled,
		EmailDeliveryEnabled:    req.EmailDeliveryEnabled,
		EmailAddress:            req.EmailAddress,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPreferencesResponse(pref))
}

func toDeliveryResponse(result *notification.TriggerResult) deliveryResponse {
	count := result.ItemCount
	return deliveryResponse{
		Success:      result.Success,
		ItemCount:    &count,
		UsedFallback: result.UsedFallback,
		Reason:       result.Reason,
	}
}

func toPreferencesResponse(p *domain.NotificationPreference) preferencesResponse {
	return preferencesResponse{
		ExpirationAlertsEnabled: p.ExpirationAlertsEnabled,
		ExpirationFrequency:     p.ExpirationFrequency.String(),
		WeeklySummaryEnabled:    p.WeeklySummaryEnabled,
		EmailDeliveryEnabled:    p.EmailDeliveryEnabled,
		EmailAddress:            p.EmailAddress,
		LastNotifiedAt:          p.LastNotifiedAt,
	}
}
