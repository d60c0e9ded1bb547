package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/techhaven/store-backend/order/domain"
)

// CheckoutRequest is the payload posted by the storefront to start a
// hosted checkout.
type CheckoutRequest struct {
	UserID   string            `json:"userId"`
	UserName string            `json:"userName"`
	Email    string            `json:"email" validate:"required,email"`
	Phone    string            `json:"phone"`
	Address  string            `json:"address"`
	Cart     []domain.CartLine `json:"cart" validate:"required,min=1,dive"`
	Amount   float64           `json:"amount" validate:"required"`
	Currency string            `json:"currency"`

	RefundPolicyAccepted bool `json:"refundPolicyAccepted"`
}

// CheckoutResponse carries the hosted checkout redirect.
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

//go:generate mockery --name PaymentGateway --output=./mocks

// PaymentGateway is the narrow slice of the payment provider the order
// service needs: opening hosted sessions and reading them back.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)
}
