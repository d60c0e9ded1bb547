package service

import (
	"context"

	"github.com/techhaven/store-backend/common"
	"github.com/techhaven/store-backend/framework/connection"
	"github.com/techhaven/store-backend/logger"
	"github.com/techhaven/store-backend/order/dal"
	"github.com/techhaven/store-backend/order/domain"
)

//go:generate mockery --name OrderService --output=../handlers/mocks
type OrderService interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutResponse, error)
	VerifyPayment(ctx context.Context, sessionID string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
	MarkDelivered(ctx context.Context, orderID string) (*domain.Order, error)
}

type Service struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	orders         dal.Orders
	gateway        PaymentGateway
	clientURL      string
}

func NewOrderService(log logger.Provider, conn *connection.Connection, gateway PaymentGateway) *Service {
	return &Service{
		loggerProvider: log,
		conn:           conn,
		orders:         dal.NewOrdersFirestoreWithClient(conn.Firestore),
		gateway:        gateway,
		clientURL:      common.GetEnv("CLIENT_URL", "http://localhost:3000"),
	}
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *Service) DeleteOrder(ctx context.Context, orderID string) error {
	return s.orders.Delete(ctx, orderID)
}

// MarkDelivered transitions a paid order to delivered. Orders that have not
// been paid yet are rejected by the data layer.
func (s *Service) MarkDelivered(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orders.MarkDelivered(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Infof("order %s marked as delivered", orderID)

	return order, nil
}
