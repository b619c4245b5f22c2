package stripegateway

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/paymentintent"
	"github.com/stripe/stripe-go/webhook"
)

// metadataBookingID ключ metadata, связывающий PaymentIntent с бронированием
const metadataBookingID = "booking_id"

// Client клиент платёжного провайдера (Stripe).
// Изолирует SDK: usecase-слой видит только CreateIntent и VerifyWebhook.
type Client struct {
	webhookSecret string
	log           Logger
}

// NewClient создает новый экземпляр клиента Stripe
func NewClient(secretKey, webhookSecret string, log Logger) *Client {
	stripe.Key = secretKey
	return &Client{
		webhookSecret: webhookSecret,
		log:           log,
	}
}

// CreateIntent создает PaymentIntent на оплату бронирования.
// booking_id кладётся в metadata и возвращается webhook'ом при оплате.
// Ключ идемпотентности защищает от двойного списания при ретраях клиента.
func (c *Client) CreateIntent(ctx context.Context, amountCents int64, currency string, bookingID int64) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	params.AddMetadata(metadataBookingID, strconv.FormatInt(bookingID, 10))
	params.SetIdempotencyKey(uuid.New().String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: booking_id=%d: %v", ErrCreateIntent, bookingID, err)
	}

	c.log.Info("Stripe: payment intent %s created for booking_id=%d", pi.ID, bookingID)

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// VerifyWebhook проверяет подпись webhook-уведомления и разбирает событие.
// При невалидной подписи возвращает ErrSignatureVerification — вызывающая
// сторона обязана отклонить уведомление, не трогая состояние.
func (c *Client) VerifyWebhook(payload []byte, sigHeader string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureVerification, err)
	}

	result := &WebhookEvent{
		ID:   event.ID,
		Type: event.Type,
	}

	if event.Data != nil {
		result.BookingID = bookingIDFromMetadata(event.Data.Object)
	}

	return result, nil
}

// bookingIDFromMetadata достает booking_id из metadata объекта события
func bookingIDFromMetadata(object map[string]interface{}) int64 {
	metadata, ok := object["metadata"].(map[string]interface{})
	if !ok {
		return 0
	}

	raw, ok := metadata[metadataBookingID].(string)
	if !ok {
		return 0
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}

	return id
}
