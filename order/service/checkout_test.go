package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v74"

	"github.com/techhaven/store-backend/framework/connection"
	"github.com/techhaven/store-backend/logger"
	loggerMocks "github.com/techhaven/store-backend/logger/mocks"
	"github.com/techhaven/store-backend/order/dal"
	dalMocks "github.com/techhaven/store-backend/order/dal/mocks"
	"github.com/techhaven/store-backend/order/domain"
	"github.com/techhaven/store-backend/order/service/mocks"
)

func TestNewOrderService(t *testing.T) {
	ctx := context.Background()

	log, err := logger.NewLogging(ctx)
	if err != nil {
		t.Fatal(err)
	}

	conn, err := connection.NewConnection(ctx, log)
	if err != nil {
		t.Fatal(err)
	}

	s := NewOrderService(func(ctx context.Context) logger.ILogger {
		return &loggerMocks.ILogger{}
	}, conn, &mocks.PaymentGateway{})

	assert.NotNil(t, s)
}

func TestOrderService_CreateCheckoutSession(t *testing.T) {
	type fields struct {
		loggerProviderMock loggerMocks.ILogger
		orders             dalMocks.Orders
		gateway            mocks.PaymentGateway
	}

	type args struct {
		ctx context.Context
		req *CheckoutRequest
	}

	ctx := context.Background()

	validCart := []domain.CartLine{
		{Name: "Mechanical Keyboard", Price: 89.99, Quantity: 1},
		{Name: "USB-C Cable", Price: 9.99, Quantity: 2},
	}

	tests := []struct {
		name          string
		args          args
		expectedErr   error
		wantURL       string
		on            func(*fields)
		assertNoCalls bool
	}{
		{
			name: "successfully created checkout session",
			args: args{
				ctx: ctx,
				req: &CheckoutRequest{
					UserID:   "user-1",
					UserName: "Dana",
					Email:    "dana@example.com",
					Cart:     validCart,
					Amount:   119.97,
				},
			},
			wantURL: "https://checkout.stripe.com/c/pay/cs_test_abc",
			on: func(f *fields) {
				f.gateway.On("CreateCheckoutSession", ctx, mock.AnythingOfType("*stripe.CheckoutSessionParams")).
					Return(&stripe.CheckoutSession{
						ID:  "cs_test_abc",
						URL: "https://checkout.stripe.com/c/pay/cs_test_abc",
					}, nil)
				f.orders.On("Create", ctx, mock.MatchedBy(func(order *domain.Order) bool {
					return order.StripeSessionID == "cs_test_abc" &&
						order.Status == domain.OrderStatusPending &&
						!order.IsPaid
				})).Return("order-1", nil)
				f.loggerProviderMock.On("Infof", mock.Anything, mock.Anything, mock.Anything).Return()
			},
		},
		{
			name: "missing email rejected before touching the gateway",
			args: args{
				ctx: ctx,
				req: &CheckoutRequest{
					Cart:   validCart,
					Amount: 119.97,
				},
			},
			expectedErr:   ErrMissingRequiredFields,
			assertNoCalls: true,
		},
		{
			name: "empty cart rejected before touching the gateway",
			args: args{
				ctx: ctx,
				req: &CheckoutRequest{
					Email:  "dana@example.com",
					Cart:   nil,
					Amount: 119.97,
				},
			},
			expectedErr:   ErrMissingRequiredFields,
			assertNoCalls: true,
		},
		{
			name: "non positive amount rejected",
			args: args{
				ctx: ctx,
				req: &CheckoutRequest{
					Email:  "dana@example.com",
					Cart:   validCart,
					Amount: -5,
				},
			},
			expectedErr:   ErrInvalidAmount,
			assertNoCalls: true,
		},
		{
			name: "gateway failure persists nothing",
			args: args{
				ctx: ctx,
				req: &CheckoutRequest{
					Email:  "dana@example.com",
					Cart:   validCart,
					Amount: 119.97,
				},
			},
			expectedErr: ErrCreateSession,
			on: func(f *fields) {
				f.gateway.On("CreateCheckoutSession", ctx, mock.AnythingOfType("*stripe.CheckoutSessionParams")).
					Return(nil, errors.New("stripe is down"))
				f.loggerProviderMock.On("Errorf", mock.Anything, mock.Anything).Return()
			},
		},
	}

	for i := 0; i < len(tests); i++ {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			f := fields{}

			s := &Service{
				loggerProvider: func(ctx context.Context) logger.ILogger {
					return &f.loggerProviderMock
				},
				orders:    &f.orders,
				gateway:   &f.gateway,
				clientURL: "https://shop.example.com",
			}

			if tt.on != nil {
				tt.on(&f)
			}

			res, err := s.CreateCheckoutSession(tt.args.ctx, tt.args.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantURL, res.URL)
			}

			if tt.assertNoCalls {
				f.gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
			}

			if errors.Is(tt.expectedErr, ErrCreateSession) {
				f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOrderService_CreateCheckoutSessionLineItems(t *testing.T) {
	ctx := context.Background()

	gateway := mocks.PaymentGateway{}
	orders := dalMocks.Orders{}
	log := loggerMocks.ILogger{}
	log.On("Infof", mock.Anything, mock.Anything, mock.Anything).Return()

	var captured *stripe.CheckoutSessionParams

	gateway.On("CreateCheckoutSession", ctx, mock.AnythingOfType("*stripe.CheckoutSessionParams")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*stripe.CheckoutSessionParams)
		}).
		Return(&stripe.CheckoutSession{ID: "cs_test_abc", URL: "https://checkout.stripe.com/c/pay/cs_test_abc"}, nil)
	orders.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return("order-1", nil)

	s := &Service{
		loggerProvider: func(ctx context.Context) logger.ILogger { return &log },
		orders:         &orders,
		gateway:        &gateway,
		clientURL:      "https://shop.example.com",
	}

	_, err := s.CreateCheckoutSession(ctx, &CheckoutRequest{
		Email: "dana@example.com",
		Cart: []domain.CartLine{
			{Name: "Mechanical Keyboard", Price: 89.99, Quantity: 1},
		},
		// 89.99 cart subtotal plus a 10.00 shipping fee.
		Amount: 99.99,
	})

	assert.NoError(t, err)
	assert.NotNil(t, captured)
	assert.Len(t, captured.LineItems, 2)
	assert.Equal(t, "Mechanical Keyboard", *captured.LineItems[0].PriceData.ProductData.Name)
	assert.Equal(t, int64(8999), *captured.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "Shipping", *captured.LineItems[1].PriceData.ProductData.Name)
	assert.Equal(t, int64(1000), *captured.LineItems[1].PriceData.UnitAmount)
	assert.Equal(t, "https://shop.example.com/success?session_id={CHECKOUT_SESSION_ID}", *captured.SuccessURL)
	assert.Equal(t, "https://shop.example.com/cancel", *captured.CancelURL)
}

func TestOrderService_VerifyPayment(t *testing.T) {
	type fields struct {
		orders  dalMocks.Orders
		gateway mocks.PaymentGateway
	}

	ctx := context.Background()
	sessionID := "cs_test_abc"

	tests := []struct {
		name        string
		expectedErr error
		on          func(*fields)
	}{
		{
			name: "paid session settles the order",
			on: func(f *fields) {
				f.gateway.On("GetCheckoutSession", ctx, sessionID).
					Return(&stripe.CheckoutSession{
						ID:            sessionID,
						PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
						PaymentIntent: &stripe.PaymentIntent{ID: "pi_123"},
					}, nil)
				f.orders.On("MarkPaidBySession", ctx, sessionID, "pi_123").
					Return(&domain.Order{ID: "order-1", Status: domain.OrderStatusPaid, IsPaid: true}, nil)
			},
		},
		{
			name:        "unpaid session is rejected without touching the store",
			expectedErr: ErrPaymentNotCompleted,
			on: func(f *fields) {
				f.gateway.On("GetCheckoutSession", ctx, sessionID).
					Return(&stripe.CheckoutSession{
						ID:            sessionID,
						PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
					}, nil)
				f.orders.On("GetBySession", ctx, sessionID).
					Return(&domain.Order{ID: "order-1", Status: domain.OrderStatusPending}, nil)
			},
		},
		{
			name:        "unknown session maps to not found",
			expectedErr: dal.ErrOrderNotFound,
			on: func(f *fields) {
				f.gateway.On("GetCheckoutSession", ctx, sessionID).
					Return(&stripe.CheckoutSession{
						ID:            sessionID,
						PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
					}, nil)
				f.orders.On("GetBySession", ctx, sessionID).
					Return(nil, dal.ErrOrderNotFound)
			},
		},
	}

	for i := 0; i < len(tests); i++ {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			f := fields{}

			s := &Service{
				orders:  &f.orders,
				gateway: &f.gateway,
			}

			if tt.on != nil {
				tt.on(&f)
			}

			order, err := s.VerifyPayment(ctx, sessionID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				f.orders.AssertNotCalled(t, "MarkPaidBySession", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.True(t, order.IsPaid)
			}
		})
	}
}
