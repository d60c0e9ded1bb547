package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/techhaven/store-backend/framework/connection"
	"github.com/techhaven/store-backend/logger"
	"github.com/techhaven/store-backend/notify"
	"github.com/techhaven/store-backend/order/dal"
)

//go:generate mockery --name WebhookService --output=./mocks

// WebhookService consumes signed gateway deliveries and reconciles them
// against the order store.
type WebhookService interface {
	HandleEvent(ctx context.Context, body []byte, signature string, apiVersion string) error
}

// paymentIntentGetter is the slice of the gateway the reconciler needs to
// enrich failure events.
type paymentIntentGetter interface {
	GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error)
}

type StripeWebhookService struct {
	loggerProvider logger.Provider
	*connection.Connection
	stripeClient *Client
	intents      paymentIntentGetter
	orders       dal.Orders
	notifier     notify.Sink
}

func NewStripeWebhookService(loggerProvider logger.Provider, conn *connection.Connection, stripeClient *Client, notifier notify.Sink) *StripeWebhookService {
	return &StripeWebhookService{
		loggerProvider,
		conn,
		stripeClient,
		stripeClient,
		dal.NewOrdersFirestoreWithClient(conn.Firestore),
		notifier,
	}
}
