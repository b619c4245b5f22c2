package create_payment_intent

import (
	"errors"
	"net/http"

	"github.com/m04kA/TennisCourt-BookingService/internal/api/handlers"
	createPaymentIntent "github.com/m04kA/TennisCourt-BookingService/internal/usecase/create_payment_intent"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingBookingID   = "booking_id is required"
	msgBookingNotFound    = "booking not found"
	msgAlreadyPaid        = "booking is already paid"
)

// CreateIntentRequest HTTP request model
type CreateIntentRequest struct {
	BookingID int64 `json:"booking_id"`
}

// CreateIntentResponse HTTP response model
type CreateIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /create-payment-intent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /create-payment-intent - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BookingID <= 0 {
		h.logger.Warn("POST /create-payment-intent - Missing booking_id")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createPaymentIntent.Request{BookingID: req.BookingID})
	if err != nil {
		switch {
		case errors.Is(err, createPaymentIntent.ErrBookingNotFound):
			h.logger.Warn("POST /create-payment-intent - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgBookingNotFound)

		case errors.Is(err, createPaymentIntent.ErrAlreadyPaid):
			h.logger.Warn("POST /create-payment-intent - Already paid: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgAlreadyPaid)

		default:
			h.logger.Error("POST /create-payment-intent - Failed: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /create-payment-intent - Intent created: booking_id=%d", req.BookingID)
	handlers.RespondJSON(w, http.StatusOK, CreateIntentResponse{ClientSecret: result.ClientSecret})
}
