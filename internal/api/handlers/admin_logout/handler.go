package admin_logout

import (
	"net/http"

	"github.com/m04kA/TennisCourt-BookingService/internal/api/handlers"
)

// LogoutResponse HTTP response model
type LogoutResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle GET /admin-logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.logger.Info("GET /admin-logout - Admin session cleared")
	handlers.RespondJSON(w, http.StatusOK, LogoutResponse{Success: true})
}
