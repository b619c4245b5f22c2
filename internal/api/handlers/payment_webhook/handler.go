package payment_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/TennisCourt-BookingService/internal/api/handlers"
	"github.com/m04kA/TennisCourt-BookingService/internal/integrations/stripegateway"
	confirmPayment "github.com/m04kA/TennisCourt-BookingService/internal/usecase/confirm_payment"
)

// maxBodyBytes ограничение на размер webhook-payload
const maxBodyBytes = int64(65536)

const (
	msgBodyReadFailed     = "failed to read request body"
	msgSignatureInvalid   = "webhook signature verification failed"
	msgEventMissingTarget = "event has no booking reference"
)

type Handler struct {
	gateway PaymentGateway
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(gateway PaymentGateway, useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		gateway: gateway,
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /webhook
// Уведомление принимается только с валидной подписью провайдера; при
// невалидной подписи состояние бронирований не меняется. Неизвестный
// booking_id подтверждается 200: оплата на стороне провайдера уже прошла,
// ретраи уведомления ничего не исправят.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("POST /webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgBodyReadFailed)
		return
	}

	event, err := h.gateway.VerifyWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("POST /webhook - Signature verification failed: %v", err)
		handlers.RespondBadRequest(w, msgSignatureInvalid)
		return
	}

	if event.Type != stripegateway.EventTypePaymentSucceeded {
		h.logger.Info("POST /webhook - Ignoring event %s of type %s", event.ID, event.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	if event.BookingID == 0 {
		h.logger.Warn("POST /webhook - Event %s has no booking_id metadata", event.ID)
		handlers.RespondBadRequest(w, msgEventMissingTarget)
		return
	}

	if err := h.useCase.Execute(r.Context(), event.BookingID); err != nil {
		if errors.Is(err, confirmPayment.ErrBookingNotFound) {
			// Логируем и подтверждаем приём, чтобы провайдер не ретраил
			h.logger.Warn("POST /webhook - Unknown booking_id=%d in event %s", event.BookingID, event.ID)
			w.WriteHeader(http.StatusOK)
			return
		}
		h.logger.Error("POST /webhook - Failed to confirm booking_id=%d: %v", event.BookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /webhook - Booking %d confirmed by event %s", event.BookingID, event.ID)
	w.WriteHeader(http.StatusOK)
}
