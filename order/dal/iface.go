package dal

import (
	"context"
	"time"

	"github.com/techhaven/store-backend/order/domain"
)

//go:generate mockery --name Orders --output=./mocks
type Orders interface {
	Create(ctx context.Context, order *domain.Order) (string, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	GetBySession(ctx context.Context, sessionID string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	Delete(ctx context.Context, orderID string) error
	MarkPaidBySession(ctx context.Context, sessionID, paymentIntentID string) (*domain.Order, error)
	MarkFailedByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Order, error)
	SetDisputeBySession(ctx context.Context, sessionID string, dispute *domain.DisputeDetails) (*domain.Order, error)
	CloseDisputeBySession(ctx context.Context, sessionID, finalStatus string, closedAt time.Time) (*domain.Order, error)
	MarkDelivered(ctx context.Context, orderID string) (*domain.Order, error)
}
