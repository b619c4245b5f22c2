package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/TennisCourt-BookingService/internal/api/handlers"
	"github.com/m04kA/TennisCourt-BookingService/internal/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgWrongPassword      = "wrong password"
)

type Handler struct {
	verifier PasswordVerifier
	sessions SessionManager
	logger   Logger
}

func NewHandler(verifier PasswordVerifier, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		verifier: verifier,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /admin-login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin-login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.verifier.Verify(req.Password); err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			h.logger.Warn("POST /admin-login - Wrong password attempt")
			handlers.RespondUnauthorized(w, msgWrongPassword)
			return
		}
		h.logger.Error("POST /admin-login - Password verification failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.sessions.SetAdmin(w); err != nil {
		h.logger.Error("POST /admin-login - Failed to set session cookie: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin-login - Admin session started")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Success: true})
}
