package handlers

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	testTools "github.com/techhaven/store-backend/common/test_tools"
	"github.com/techhaven/store-backend/logger"
	"github.com/techhaven/store-backend/order/dal"
	"github.com/techhaven/store-backend/order/domain"
	"github.com/techhaven/store-backend/order/service"
	serviceMocks "github.com/techhaven/store-backend/order/handlers/mocks"
)

func TestOrders_CreateCheckoutSessionHandler(t *testing.T) {
	type fields struct {
		service *serviceMocks.OrderService
	}

	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "success creates checkout session",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
					"email":  "dana@example.com",
					"amount": 49.99,
					"cart": []map[string]interface{}{
						{"name": "Mechanical Keyboard", "price": 49.99, "quantity": 1},
					},
				}, nil),
			},
			wantErr: false,
			on: func(f *fields) {
				f.service.On("CreateCheckoutSession", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("*service.CheckoutRequest")).
					Return(&service.CheckoutResponse{SessionID: "cs_test_abc", URL: "https://checkout.stripe.com/c/pay/cs_test_abc"}, nil)
			},
		},
		{
			name: "validation error from service",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
					"amount": 49.99,
				}, nil),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("CreateCheckoutSession", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("*service.CheckoutRequest")).
					Return(nil, service.ErrMissingRequiredFields)
			},
		},
		{
			name: "session create failure",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
					"email":  "dana@example.com",
					"amount": 49.99,
					"cart": []map[string]interface{}{
						{"name": "Mechanical Keyboard", "price": 49.99, "quantity": 1},
					},
				}, nil),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("CreateCheckoutSession", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("*service.CheckoutRequest")).
					Return(nil, service.ErrCreateSession)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = fields{
				service: &serviceMocks.OrderService{},
			}

			h := &Orders{
				loggerProvider: logger.FromContext,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			if err := h.CreateCheckoutSessionHandler(tt.args.ctx); (err != nil) != tt.wantErr {
				t.Errorf("Orders.CreateCheckoutSessionHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrders_VerifyPaymentHandler(t *testing.T) {
	type fields struct {
		service *serviceMocks.OrderService
	}

	tests := []struct {
		name      string
		fields    fields
		sessionID string
		wantErr   bool
		on        func(f *fields)
	}{
		{
			name:      "payment verified",
			sessionID: "cs_test_abc",
			wantErr:   false,
			on: func(f *fields) {
				f.service.On("VerifyPayment", mock.AnythingOfType("*gin.Context"), "cs_test_abc").
					Return(&domain.Order{ID: "order-1", IsPaid: true}, nil)
			},
		},
		{
			name:      "missing session id",
			sessionID: "",
			wantErr:   true,
		},
		{
			name:      "payment not completed",
			sessionID: "cs_test_abc",
			wantErr:   true,
			on: func(f *fields) {
				f.service.On("VerifyPayment", mock.AnythingOfType("*gin.Context"), "cs_test_abc").
					Return(nil, service.ErrPaymentNotCompleted)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = fields{
				service: &serviceMocks.OrderService{},
			}

			ctx := testTools.GenerateCtxWithJSONAndParams(t, nil, nil)
			if tt.sessionID != "" {
				ctx.Request.URL.RawQuery = "session_id=" + tt.sessionID
			}

			h := &Orders{
				loggerProvider: logger.FromContext,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			if err := h.VerifyPaymentHandler(ctx); (err != nil) != tt.wantErr {
				t.Errorf("Orders.VerifyPaymentHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrders_MarkDeliveredHandler(t *testing.T) {
	type fields struct {
		service *serviceMocks.OrderService
	}

	tests := []struct {
		name    string
		body    map[string]interface{}
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "paid order delivered",
			body: map[string]interface{}{"orderId": "order-1"},
			on: func(f *fields) {
				f.service.On("MarkDelivered", mock.AnythingOfType("*gin.Context"), "order-1").
					Return(&domain.Order{ID: "order-1", Status: domain.OrderStatusDelivered}, nil)
			},
		},
		{
			name:    "missing order id",
			body:    map[string]interface{}{},
			wantErr: true,
		},
		{
			name:    "order not found",
			body:    map[string]interface{}{"orderId": "order-x"},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("MarkDelivered", mock.AnythingOfType("*gin.Context"), "order-x").
					Return(nil, dal.ErrOrderNotFound)
			},
		},
		{
			name:    "unpaid order rejected",
			body:    map[string]interface{}{"orderId": "order-2"},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("MarkDelivered", mock.AnythingOfType("*gin.Context"), "order-2").
					Return(nil, dal.ErrOrderNotPaid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				service: &serviceMocks.OrderService{},
			}

			h := &Orders{
				loggerProvider: logger.FromContext,
				service:        f.service,
			}

			if tt.on != nil {
				tt.on(&f)
			}

			ctx := testTools.GenerateCtxWithJSONAndParams(t, tt.body, nil)

			if err := h.MarkDeliveredHandler(ctx); (err != nil) != tt.wantErr {
				t.Errorf("Orders.MarkDeliveredHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrders_DeleteOrderHandler(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		wantErr bool
		on      func(s *serviceMocks.OrderService)
	}{
		{
			name:    "order deleted",
			orderID: "order-1",
			on: func(s *serviceMocks.OrderService) {
				s.On("DeleteOrder", mock.AnythingOfType("*gin.Context"), "order-1").Return(nil)
			},
		},
		{
			name:    "order not found",
			orderID: "order-x",
			wantErr: true,
			on: func(s *serviceMocks.OrderService) {
				s.On("DeleteOrder", mock.AnythingOfType("*gin.Context"), "order-x").Return(dal.ErrOrderNotFound)
			},
		},
		{
			name:    "missing order id",
			orderID: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMocks.OrderService{}

			h := &Orders{
				loggerProvider: logger.FromContext,
				service:        svc,
			}

			if tt.on != nil {
				tt.on(svc)
			}

			var params []gin.Param
			if tt.orderID != "" {
				params = []gin.Param{{Key: "orderID", Value: tt.orderID}}
			}

			ctx := testTools.GenerateCtxWithJSONAndParams(t, nil, params)

			if err := h.DeleteOrderHandler(ctx); (err != nil) != tt.wantErr {
				t.Errorf("Orders.DeleteOrderHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrders_ListOrdersHandler(t *testing.T) {
	svc := &serviceMocks.OrderService{}
	svc.On("ListOrders", mock.AnythingOfType("*gin.Context")).
		Return([]*domain.Order{{ID: "order-1"}}, nil)

	h := &Orders{
		loggerProvider: logger.FromContext,
		service:        svc,
	}

	ctx := testTools.GenerateCtxWithJSONAndParams(t, nil, nil)

	if err := h.ListOrdersHandler(ctx); err != nil {
		t.Errorf("Orders.ListOrdersHandler() error = %v", err)
	}
}

func TestOrders_ListOrdersByUserHandler(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr bool
		on      func(s *serviceMocks.OrderService)
	}{
		{
			name:   "orders for user",
			userID: "user-1",
			on: func(s *serviceMocks.OrderService) {
				s.On("ListOrdersByUser", mock.AnythingOfType("*gin.Context"), "user-1").
					Return([]*domain.Order{{ID: "order-1", UserID: "user-1"}}, nil)
			},
		},
		{
			name:    "missing user id",
			userID:  "",
			wantErr: true,
		},
		{
			name:    "dal failure",
			userID:  "user-2",
			wantErr: true,
			on: func(s *serviceMocks.OrderService) {
				s.On("ListOrdersByUser", mock.AnythingOfType("*gin.Context"), "user-2").
					Return(nil, errors.New("firestore unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMocks.OrderService{}

			h := &Orders{
				loggerProvider: logger.FromContext,
				service:        svc,
			}

			if tt.on != nil {
				tt.on(svc)
			}

			var params []gin.Param
			if tt.userID != "" {
				params = []gin.Param{{Key: "userID", Value: tt.userID}}
			}

			ctx := testTools.GenerateCtxWithJSONAndParams(t, nil, params)

			if err := h.ListOrdersByUserHandler(ctx); (err != nil) != tt.wantErr {
				t.Errorf("Orders.ListOrdersByUserHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
