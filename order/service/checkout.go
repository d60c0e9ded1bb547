package service

import (
	"context"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"

	"github.com/techhaven/store-backend/order/domain"
	"github.com/techhaven/store-backend/stripe/utils"
)

const shippingLineName = "Shipping"

var validate = validator.New()

// CreateCheckoutSession opens a hosted checkout session for the cart and
// persists a pending order keyed by the returned session id. Nothing is
// persisted when the session cannot be created.
func (s *Service) CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutResponse, error) {
	logger := s.loggerProvider(ctx)

	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	amountInCents := utils.ToCents(req.Amount)

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{
			string(stripe.PaymentMethodTypeCard),
		}),
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.Email),
		LineItems:     checkoutLineItems(req.Cart, currency, amountInCents),
		SuccessURL:    stripe.String(fmt.Sprintf("%s/success?session_id={CHECKOUT_SESSION_ID}", s.clientURL)),
		CancelURL:     stripe.String(fmt.Sprintf("%s/cancel", s.clientURL)),
	}

	if req.UserID != "" {
		params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"userId": req.UserID,
			},
		}
	}

	params.SetIdempotencyKey(uuid.New().String())

	session, err := s.gateway.CreateCheckoutSession(ctx, params)
	if err != nil {
		logger.Errorf("checkout session create failed: %s", err)
		return nil, fmt.Errorf("%w: %s", ErrCreateSession, err)
	}

	order := &domain.Order{
		UserID:               req.UserID,
		UserName:             req.UserName,
		UserEmail:            req.Email,
		Phone:                req.Phone,
		Address:              req.Address,
		Cart:                 req.Cart,
		Amount:               req.Amount,
		Currency:             currency,
		StripeSessionID:      session.ID,
		Status:               domain.OrderStatusPending,
		RefundPolicyAccepted: req.RefundPolicyAccepted,
	}

	if session.PaymentIntent != nil {
		order.PaymentIntentID = session.PaymentIntent.ID
	}

	orderID, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	logger.Infof("created pending order %s for checkout session %s", orderID, session.ID)

	return &CheckoutResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// VerifyPayment is the pull path used by the storefront success page. It
// retrieves the session from the payment provider and settles the order if
// the session is paid. Safe to call any number of times.
func (s *Service) VerifyPayment(ctx context.Context, sessionID string) (*domain.Order, error) {
	session, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		// Surface a miss on the session itself before reporting the payment
		// state, so an unknown session id maps to not-found rather than 402.
		if _, err := s.orders.GetBySession(ctx, sessionID); err != nil {
			return nil, err
		}

		return nil, ErrPaymentNotCompleted
	}

	var paymentIntentID string
	if session.PaymentIntent != nil {
		paymentIntentID = session.PaymentIntent.ID
	}

	return s.orders.MarkPaidBySession(ctx, sessionID, paymentIntentID)
}

func validateCheckoutRequest(req *CheckoutRequest) error {
	if req == nil {
		return ErrMissingRequiredFields
	}

	if err := validate.StructExcept(req, "Amount"); err != nil {
		return ErrMissingRequiredFields
	}

	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return ErrInvalidAmount
	}

	return nil
}

func checkoutLineItems(cart []domain.CartLine, currency string, amountInCents int64) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(cart)+1)

	var itemsSubtotal int64

	for _, line := range cart {
		unitAmount := utils.ToCents(line.Price)
		itemsSubtotal += unitAmount * line.Quantity

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Name),
				},
				UnitAmount: stripe.Int64(unitAmount),
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	// The order total may exceed the cart subtotal by the shipping fee.
	if shipping := amountInCents - itemsSubtotal; shipping > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(shippingLineName),
				},
				UnitAmount: stripe.Int64(shipping),
			},
			Quantity: stripe.Int64(1),
		})
	}

	return lineItems
}
