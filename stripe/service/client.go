package service

import (
	"context"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/techhaven/store-backend/common"
)

// gatewayTimeout bounds every outbound gateway call.
const gatewayTimeout = 30 * time.Second

type Client struct {
	*client.API
	webhookSignKey string
}

// NewStripeClient builds a gateway client from the environment.
func NewStripeClient() (*Client, error) {
	apiKey := common.GetEnv("STRIPE_API_KEY", "")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	// Init stripe client
	var stripeClient client.API

	stripeClient.Init(apiKey, stripe.NewBackends(&http.Client{
		Timeout: gatewayTimeout,
	}))

	return &Client{
		&stripeClient,
		common.GetEnv("STRIPE_WEBHOOK_SECRET", ""),
	}, nil
}

// CreateCheckoutSession opens a hosted checkout session.
func (c *Client) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx

	return c.CheckoutSessions.New(params)
}

// GetCheckoutSession reads a hosted checkout session back from the gateway.
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	return c.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
}

// GetPaymentIntent reads a payment intent back from the gateway.
func (c *Client) GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	return c.PaymentIntents.Get(id, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
}
