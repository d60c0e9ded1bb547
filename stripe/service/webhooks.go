package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/techhaven/store-backend/notify"
	"github.com/techhaven/store-backend/order/dal"
	"github.com/techhaven/store-backend/order/domain"
	"github.com/techhaven/store-backend/stripe/utils"
)

func (s *StripeWebhookService) constructWebhookEvent(body []byte, signature string, apiVersion string) (*stripe.Event, error) {
	if apiVersion == stripe.APIVersion {
		// if apiVersion is provided and matches the current api version the SDK uses,
		// then we can use the default ConstructEvent method
		event, err := webhook.ConstructEvent(body, signature, s.stripeClient.webhookSignKey)
		if err != nil {
			return nil, err
		}

		return &event, nil
	}

	// If no apiVersion is provided, then set ignore api version mismatch flag
	event, err := webhook.ConstructEventWithOptions(body, signature, s.stripeClient.webhookSignKey, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// HandleEvent verifies a webhook delivery against the raw body and applies
// the event to the order store. It returns an error only when signature
// verification fails: once the delivery is verified, processing failures are
// logged and the delivery is acknowledged so the gateway does not redeliver
// an event this system chose not to act on.
func (s *StripeWebhookService) HandleEvent(ctx context.Context, body []byte, signature string, apiVersion string) error {
	l := s.loggerProvider(ctx)

	event, err := s.constructWebhookEvent(body, signature, apiVersion)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrEventVerification, err)
	}

	l.SetLabels(map[string]string{
		"eventType":       event.Type,
		"eventApiVersion": event.APIVersion,
	})

	l.Infof("event type: %s", event.Type)

	if err := s.processEvent(ctx, event); err != nil {
		l.Errorf("stripe webhook: processing %s event %s failed: %s", event.Type, event.ID, err)
	}

	return nil
}

// processEvent dispatches a verified event. Every branch converges under
// replays: transitions are expressed as field assignments keyed by the
// gateway correlation id, never as increments.
func (s *StripeWebhookService) processEvent(ctx context.Context, event *stripe.Event) error {
	l := s.loggerProvider(ctx)

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		return s.handleCheckoutSessionCompleted(ctx, &session)
	case "checkout.session.async_payment_failed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		return s.handleAsyncPaymentFailed(ctx, &session)
	case "charge.dispute.created":
		var dispute stripe.Dispute
		if err := json.Unmarshal(event.Data.Raw, &dispute); err != nil {
			return err
		}

		return s.handleChargeDisputeCreated(ctx, &dispute)
	case "charge.dispute.closed":
		var dispute stripe.Dispute
		if err := json.Unmarshal(event.Data.Raw, &dispute); err != nil {
			return err
		}

		return s.handleChargeDisputeClosed(ctx, event.Created, &dispute)
	default:
		l.Warningf("Unhandled Stripe webhook event type: %s", event.Type)
		return nil
	}
}

func (s *StripeWebhookService) handleCheckoutSessionCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	l := s.loggerProvider(ctx)

	var paymentIntentID string
	if session.PaymentIntent != nil {
		paymentIntentID = session.PaymentIntent.ID
	}

	order, err := s.orders.MarkPaidBySession(ctx, session.ID, paymentIntentID)
	if err != nil {
		if !errors.Is(err, dal.ErrOrderNotFound) {
			return err
		}

		l.Warningf("no order found for checkout session %s", session.ID)
	}

	payerEmail := session.CustomerEmail
	if order != nil && order.UserEmail != "" {
		payerEmail = order.UserEmail
	}

	s.notifier.Notify(ctx, &notify.Notification{
		Severity: notify.SeverityInfo,
		Subject:  "Stripe Alert: Payment Successful",
		Fields: []notify.Field{
			{Title: "Order ID", Value: orderID(order)},
			{Title: "Payer", Value: valueOrNA(payerEmail)},
			{Title: "Amount", Value: utils.FormatAmount(session.AmountTotal, string(session.Currency))},
			{Title: "Session", Value: session.ID},
		},
	})

	return nil
}

func (s *StripeWebhookService) handleAsyncPaymentFailed(ctx context.Context, session *stripe.CheckoutSession) error {
	l := s.loggerProvider(ctx)

	if session.PaymentIntent == nil {
		l.Warningf("async payment failure for session %s carries no payment intent", session.ID)
		return nil
	}

	paymentIntentID := session.PaymentIntent.ID

	reason := "unknown"

	if pi, err := s.intents.GetPaymentIntent(ctx, paymentIntentID); err != nil {
		l.Warningf("failed to read payment intent %s: %s", paymentIntentID, err)
	} else if pi.LastPaymentError != nil && pi.LastPaymentError.Msg != "" {
		reason = pi.LastPaymentError.Msg
	}

	order, err := s.orders.MarkFailedByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		if !errors.Is(err, dal.ErrOrderNotFound) {
			return err
		}

		l.Warningf("no order found for payment intent %s", paymentIntentID)
	}

	s.notifier.Notify(ctx, &notify.Notification{
		Severity: notify.SeverityUrgent,
		Subject:  "Stripe Alert: Payment Failed",
		Fields: []notify.Field{
			{Title: "Order ID", Value: orderID(order)},
			{Title: "Payment Intent", Value: paymentIntentID},
			{Title: "Amount", Value: utils.FormatAmount(session.AmountTotal, string(session.Currency))},
			{Title: "Reason", Value: reason},
		},
	})

	return nil
}

func (s *StripeWebhookService) handleChargeDisputeCreated(ctx context.Context, dispute *stripe.Dispute) error {
	l := s.loggerProvider(ctx)

	if dispute.PaymentIntent == nil {
		l.Warningf("dispute %s carries no payment intent", dispute.ID)
		return nil
	}

	details := &domain.DisputeDetails{
		ID:      dispute.ID,
		Reason:  string(dispute.Reason),
		Amount:  dispute.Amount,
		Status:  string(dispute.Status),
		Created: time.Unix(dispute.Created, 0).UTC(),
	}

	dueBy := "N/A"

	if dispute.EvidenceDetails != nil {
		details.EvidenceDueBy = time.Unix(dispute.EvidenceDetails.DueBy, 0).UTC()
		dueBy = details.EvidenceDueBy.Format(time.RFC1123)
	}

	order, err := s.orders.SetDisputeBySession(ctx, dispute.PaymentIntent.ID, details)
	if err != nil {
		if !errors.Is(err, dal.ErrOrderNotFound) {
			return err
		}

		l.Warningf("no order found for disputed payment intent %s", dispute.PaymentIntent.ID)
	}

	s.notifier.Notify(ctx, &notify.Notification{
		Severity: notify.SeverityUrgent,
		Subject:  "Stripe Alert: Dispute Created",
		Fields: []notify.Field{
			{Title: "Order ID", Value: orderID(order)},
			{Title: "Dispute ID", Value: dispute.ID},
			{Title: "Reason", Value: string(dispute.Reason)},
			{Title: "Amount", Value: utils.FormatAmount(dispute.Amount, string(dispute.Currency))},
			{Title: "Evidence Due By", Value: dueBy},
		},
	})

	return nil
}

func (s *StripeWebhookService) handleChargeDisputeClosed(ctx context.Context, eventCreated int64, dispute *stripe.Dispute) error {
	l := s.loggerProvider(ctx)

	if dispute.PaymentIntent == nil {
		l.Warningf("dispute %s carries no payment intent", dispute.ID)
		return nil
	}

	closedAt := time.Unix(eventCreated, 0).UTC()

	order, err := s.orders.CloseDisputeBySession(ctx, dispute.PaymentIntent.ID, string(dispute.Status), closedAt)
	if err != nil {
		if !errors.Is(err, dal.ErrOrderNotFound) {
			return err
		}

		l.Warningf("no order found for disputed payment intent %s", dispute.PaymentIntent.ID)
	}

	s.notifier.Notify(ctx, &notify.Notification{
		Severity: notify.SeverityMedium,
		Subject:  "Stripe Alert: Dispute Closed",
		Fields: []notify.Field{
			{Title: "Order ID", Value: orderID(order)},
			{Title: "Dispute ID", Value: dispute.ID},
			{Title: "Resolution", Value: string(dispute.Status)},
			{Title: "Closed At", Value: closedAt.Format(time.RFC1123)},
		},
	})

	return nil
}

func orderID(order *domain.Order) string {
	if order == nil {
		return "N/A"
	}

	return order.ID
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}

	return v
}
