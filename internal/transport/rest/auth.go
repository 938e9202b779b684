package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantrywatch-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	StartRegistration(ctx context.Context, input auth.RegisterInput) (*auth.CodeSentResult, error)
	CompleteRegistration(ctx context.Context, input auth.VerifyInput) (*auth.AuthResult, error)
	RequestPasswordReset(ctx context.Context, input auth.ResetRequestInput) error
	ConfirmPasswordReset(ctx context.Context, input auth.ResetConfirmInput) (uuid.UUID, error)
}

// AuthHandler serves the email verification flows.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type resetRequest struct {
	Email string `json:"email"`
}

type resetConfirmRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

type codeSentResponse struct {
	Status       string    `json:"status"`
	ExpiresAt    time.Time `json:"expiresAt"`
	UsedFallback bool      `json:"usedFallback"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// StartRegistration handles POST /auth/register/start.
func (h *AuthHandler) StartRegistration(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.StartRegistration(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, codeSentResponse{
		Status:       "code_sent",
		ExpiresAt:    result.ExpiresAt,
		UsedFallback: result.UsedFallback,
	})
}

// CompleteRegistration handles POST /auth/register/verify.
func (h *AuthHandler) CompleteRegistration(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.CompleteRegistration(r.Context(), auth.VerifyInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		AccessToken: result.AccessToken,
		User: userResponse{
			ID:       result.User.ID.String(),
			Email:    result.User.Email,
			Username: result.User.Username,
		},
	})
}

// RequestPasswordReset handles POST /auth/password-reset/request. The
// response is identical whether or not the address has an account.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.RequestPasswordReset(r.Context(), auth.ResetRequestInput{Email: req.Email}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, statusResponse{Status: "code_sent"})
}

// ConfirmPasswordReset handles POST /auth/password-reset/verify.
func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetConfirmRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.svc.ConfirmPasswordReset(r.Context(), auth.ResetConfirmInput{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "password_updated"})
}
