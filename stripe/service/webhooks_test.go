package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/techhaven/store-backend/logger"
	loggerMocks "github.com/techhaven/store-backend/logger/mocks"
	"github.com/techhaven/store-backend/notify"
	notifyMocks "github.com/techhaven/store-backend/notify/mocks"
	"github.com/techhaven/store-backend/order/dal"
	dalMocks "github.com/techhaven/store-backend/order/dal/mocks"
	"github.com/techhaven/store-backend/order/domain"
)

const testSignKey = "whsec_test_secret"

type stubIntentGetter struct {
	pi  *stripe.PaymentIntent
	err error
}

func (s *stubIntentGetter) GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	return s.pi, s.err
}

func signedHeader(t *testing.T, payload []byte, at time.Time) string {
	t.Helper()

	sig := webhook.ComputeSignature(at, payload, testSignKey)

	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(sig))
}

func eventBody(eventType, object string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_1","object":"event","api_version":%q,"created":1700000000,"type":%q,"data":{"object":%s}}`,
		stripe.APIVersion, eventType, object,
	))
}

func fieldValue(n *notify.Notification, title string) string {
	for _, f := range n.Fields {
		if f.Title == title {
			return f.Value
		}
	}

	return ""
}

func TestStripeWebhookService_HandleEvent(t *testing.T) {
	type fields struct {
		log      loggerMocks.ILogger
		orders   dalMocks.Orders
		notifier notifyMocks.Sink
		intents  stubIntentGetter
	}

	ctx := context.Background()

	completedSession := `{"id":"cs_123","object":"checkout.session","amount_total":4999,"currency":"usd","payment_intent":"pi_1","customer_email":"guest@example.com"}`
	failedSession := `{"id":"cs_9","object":"checkout.session","amount_total":2599,"currency":"eur","payment_intent":"pi_9"}`

	tests := []struct {
		name    string
		body    []byte
		tamper  bool
		wantErr bool
		on      func(*fields)
	}{
		{
			name: "payment completed settles the order",
			body: eventBody("checkout.session.completed", completedSession),
			on: func(f *fields) {
				f.orders.On("MarkPaidBySession", ctx, "cs_123", "pi_1").
					Return(&domain.Order{ID: "order-1", UserEmail: "jane@example.com"}, nil)
				f.notifier.On("Notify", ctx, mock.MatchedBy(func(n *notify.Notification) bool {
					return n.Subject == "Stripe Alert: Payment Successful" &&
						fieldValue(n, "Order ID") == "order-1" &&
						fieldValue(n, "Payer") == "jane@example.com" &&
						fieldValue(n, "Amount") == "49.99 USD"
				})).Return()
			},
		},
		{
			name: "unknown session is still acknowledged",
			body: eventBody("checkout.session.completed", completedSession),
			on: func(f *fields) {
				f.orders.On("MarkPaidBySession", ctx, "cs_123", "pi_1").
					Return(nil, dal.ErrOrderNotFound)
				f.log.On("Warningf", mock.Anything, mock.Anything).Return()
				f.notifier.On("Notify", ctx, mock.MatchedBy(func(n *notify.Notification) bool {
					return fieldValue(n, "Order ID") == "N/A" &&
						fieldValue(n, "Payer") == "guest@example.com"
				})).Return()
			},
		},
		{
			name:    "tampered body is rejected",
			body:    eventBody("checkout.session.completed", completedSession),
			tamper:  true,
			wantErr: true,
		},
		{
			name: "async payment failure marks the order failed",
			body: eventBody("checkout.session.async_payment_failed", failedSession),
			on: func(f *fields) {
				f.intents.pi = &stripe.PaymentIntent{
					ID:               "pi_9",
					LastPaymentError: &stripe.Error{Msg: "card declined"},
				}
				f.orders.On("MarkFailedByPaymentIntent", ctx, "pi_9").
					Return(&domain.Order{ID: "order-9", Status: domain.OrderStatusFailed}, nil)
				f.notifier.On("Notify", ctx, mock.MatchedBy(func(n *notify.Notification) bool {
					return n.Subject == "Stripe Alert: Payment Failed" &&
						fieldValue(n, "Payment Intent") == "pi_9" &&
						fieldValue(n, "Amount") == "25.99 EUR" &&
						fieldValue(n, "Reason") == "card declined"
				})).Return()
			},
		},
		{
			name: "unrecognized event type is acknowledged without side effects",
			body: eventBody("invoice.paid", `{"id":"in_1","object":"invoice"}`),
			on: func(f *fields) {
				f.log.On("Warningf", mock.Anything, mock.Anything).Return()
			},
		},
	}

	for i := 0; i < len(tests); i++ {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			f := fields{}

			f.log.On("SetLabels", mock.Anything).Return().Maybe()
			f.log.On("Infof", mock.Anything, mock.Anything).Return().Maybe()

			if tt.on != nil {
				tt.on(&f)
			}

			s := &StripeWebhookService{
				loggerProvider: func(ctx context.Context) logger.ILogger {
					return &f.log
				},
				stripeClient: &Client{nil, testSignKey},
				intents:      &f.intents,
				orders:       &f.orders,
				notifier:     &f.notifier,
			}

			signature := signedHeader(t, tt.body, time.Now())

			body := tt.body
			if tt.tamper {
				body = append([]byte{}, tt.body...)
				body[len(body)-2] ^= 0x01
			}

			err := s.HandleEvent(ctx, body, signature, "")

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEventVerification)
			} else {
				assert.NoError(t, err)
			}

			f.orders.AssertExpectations(t)
			f.notifier.AssertExpectations(t)
		})
	}
}

func TestStripeWebhookService_DisputeLifecycle(t *testing.T) {
	ctx := context.Background()

	created := eventBody("charge.dispute.created",
		`{"id":"dp_1","object":"dispute","amount":4999,"currency":"usd","reason":"fraudulent","status":"needs_response","created":1700000000,"payment_intent":"pi_1","evidence_details":{"due_by":1700600000}}`)
	closed := eventBody("charge.dispute.closed",
		`{"id":"dp_1","object":"dispute","amount":4999,"currency":"usd","reason":"fraudulent","status":"won","payment_intent":"pi_1"}`)

	log := loggerMocks.ILogger{}
	log.On("SetLabels", mock.Anything).Return()
	log.On("Infof", mock.Anything, mock.Anything).Return()

	orders := dalMocks.Orders{}
	orders.On("SetDisputeBySession", ctx, "pi_1", mock.MatchedBy(func(d *domain.DisputeDetails) bool {
		return d.ID == "dp_1" &&
			d.Reason == "fraudulent" &&
			d.EvidenceDueBy.Equal(time.Unix(1700600000, 0).UTC())
	})).Return(&domain.Order{ID: "order-1", IsDisputed: true}, nil)
	orders.On("CloseDisputeBySession", ctx, "pi_1", "won", time.Unix(1700000000, 0).UTC()).
		Return(&domain.Order{ID: "order-1", IsDisputed: false}, nil)

	notifier := notifyMocks.Sink{}
	notifier.On("Notify", ctx, mock.MatchedBy(func(n *notify.Notification) bool {
		return n.Subject == "Stripe Alert: Dispute Created" && fieldValue(n, "Dispute ID") == "dp_1"
	})).Return()
	notifier.On("Notify", ctx, mock.MatchedBy(func(n *notify.Notification) bool {
		return n.Subject == "Stripe Alert: Dispute Closed" && fieldValue(n, "Resolution") == "won"
	})).Return()

	s := &StripeWebhookService{
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return &log
		},
		stripeClient: &Client{nil, testSignKey},
		orders:       &orders,
		notifier:     &notifier,
	}

	assert.NoError(t, s.HandleEvent(ctx, created, signedHeader(t, created, time.Now()), ""))
	assert.NoError(t, s.HandleEvent(ctx, closed, signedHeader(t, closed, time.Now()), ""))

	orders.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestStripeWebhookService_DisputeWithoutEvidenceDetails(t *testing.T) {
	ctx := context.Background()

	created := eventBody("charge.dispute.created",
		`{"id":"dp_2","object":"dispute","amount":4999,"currency":"usd","reason":"general","status":"needs_response","created":1700000000,"payment_intent":"pi_1"}`)

	log := loggerMocks.ILogger{}
	log.On("SetLabels", mock.Anything).Return()
	log.On("Infof", mock.Anything, mock.Anything).Return()

	orders := dalMocks.Orders{}
	orders.On("SetDisputeBySession", ctx, "pi_1", mock.MatchedBy(func(d *domain.DisputeDetails) bool {
		return d.ID == "dp_2" && d.EvidenceDueBy.IsZero()
	})).Return(&domain.Order{ID: "order-1", IsDisputed: true}, nil)

	notifier := notifyMocks.Sink{}
	notifier.On("Notify", ctx, mock.MatchedBy(func(n *notify.Notification) bool {
		return n.Subject == "Stripe Alert: Dispute Created" &&
			fieldValue(n, "Evidence Due By") == "N/A"
	})).Return()

	s := &StripeWebhookService{
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return &log
		},
		stripeClient: &Client{nil, testSignKey},
		orders:       &orders,
		notifier:     &notifier,
	}

	assert.NoError(t, s.HandleEvent(ctx, created, signedHeader(t, created, time.Now()), ""))

	orders.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestStripeWebhookService_ReplayConverges(t *testing.T) {
	ctx := context.Background()

	body := eventBody("checkout.session.completed",
		`{"id":"cs_123","object":"checkout.session","amount_total":4999,"currency":"usd","payment_intent":"pi_1"}`)

	log := loggerMocks.ILogger{}
	log.On("SetLabels", mock.Anything).Return()
	log.On("Infof", mock.Anything, mock.Anything).Return()

	settled := &domain.Order{
		ID:     "order-1",
		Status: domain.OrderStatusPaid,
		IsPaid: true,
	}

	orders := dalMocks.Orders{}
	orders.On("MarkPaidBySession", ctx, "cs_123", "pi_1").Return(settled, nil).Twice()

	notifier := notifyMocks.Sink{}
	notifier.On("Notify", ctx, mock.Anything).Return().Twice()

	s := &StripeWebhookService{
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return &log
		},
		stripeClient: &Client{nil, testSignKey},
		orders:       &orders,
		notifier:     &notifier,
	}

	signature := signedHeader(t, body, time.Now())

	assert.NoError(t, s.HandleEvent(ctx, body, signature, ""))
	assert.NoError(t, s.HandleEvent(ctx, body, signature, ""))

	orders.AssertExpectations(t)
	notifier.AssertExpectations(t)
}
