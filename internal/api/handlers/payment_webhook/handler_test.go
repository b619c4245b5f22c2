package payment_webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TennisCourt-BookingService/internal/integrations/stripegateway"
	confirmPayment "github.com/m04kA/TennisCourt-BookingService/internal/usecase/confirm_payment"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeGateway struct {
	event     *stripegateway.WebhookEvent
	verifyErr error
}

func (g *fakeGateway) VerifyWebhook(_ []byte, _ string) (*stripegateway.WebhookEvent, error) {
	if g.verifyErr != nil {
		return nil, g.verifyErr
	}
	return g.event, nil
}

type fakeConfirmUseCase struct {
	err       error
	confirmed []int64
}

func (uc *fakeConfirmUseCase) Execute(_ context.Context, bookingID int64) error {
	if uc.err != nil {
		return uc.err
	}
	uc.confirmed = append(uc.confirmed, bookingID)
	return nil
}

func doWebhookRequest(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=sig")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeConfirmUseCase{}
	gateway := &fakeGateway{
		event: &stripegateway.WebhookEvent{
			ID:        "evt_1",
			Type:      stripegateway.EventTypePaymentSucceeded,
			BookingID: 42,
		},
	}

	rec := doWebhookRequest(NewHandler(gateway, uc, fakeLogger{}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{42}, uc.confirmed)
}

func TestHandle_InvalidSignature(t *testing.T) {
	uc := &fakeConfirmUseCase{}
	gateway := &fakeGateway{verifyErr: stripegateway.ErrSignatureVerification}

	rec := doWebhookRequest(NewHandler(gateway, uc, fakeLogger{}))

	// Невалидная подпись отклоняется, состояние не меняется
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.confirmed)
}

func TestHandle_IgnoresOtherEventTypes(t *testing.T) {
	uc := &fakeConfirmUseCase{}
	gateway := &fakeGateway{
		event: &stripegateway.WebhookEvent{
			ID:        "evt_2",
			Type:      "payment_intent.payment_failed",
			BookingID: 42,
		},
	}

	rec := doWebhookRequest(NewHandler(gateway, uc, fakeLogger{}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, uc.confirmed)
}

func TestHandle_MissingBookingID(t *testing.T) {
	uc := &fakeConfirmUseCase{}
	gateway := &fakeGateway{
		event: &stripegateway.WebhookEvent{
			ID:   "evt_3",
			Type: stripegateway.EventTypePaymentSucceeded,
		},
	}

	rec := doWebhookRequest(NewHandler(gateway, uc, fakeLogger{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.confirmed)
}

func TestHandle_UnknownBookingAcked(t *testing.T) {
	// Неизвестный booking_id подтверждается 200, чтобы провайдер не ретраил
	uc := &fakeConfirmUseCase{err: confirmPayment.ErrBookingNotFound}
	gateway := &fakeGateway{
		event: &stripegateway.WebhookEvent{
			ID:        "evt_4",
			Type:      stripegateway.EventTypePaymentSucceeded,
			BookingID: 99,
		},
	}

	rec := doWebhookRequest(NewHandler(gateway, uc, fakeLogger{}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_ConfirmationFailure(t *testing.T) {
	uc := &fakeConfirmUseCase{err: errors.New("db unavailable")}
	gateway := &fakeGateway{
		event: &stripegateway.WebhookEvent{
			ID:        "evt_5",
			Type:      stripegateway.EventTypePaymentSucceeded,
			BookingID: 42,
		},
	}

	rec := doWebhookRequest(NewHandler(gateway, uc, fakeLogger{}))

	// 5xx заставит провайдера повторить уведомление
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
