package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/techhaven/store-backend/framework/connection"
	"github.com/techhaven/store-backend/order/domain"
)

const ordersCollection = "orders"

const (
	fieldStatus          = "status"
	fieldIsPaid          = "isPaid"
	fieldIsDisputed      = "isDisputed"
	fieldPaymentIntentID = "paymentIntentId"
	fieldStripeSessionID = "stripeSessionId"
	fieldDispute         = "dispute"
	fieldDeliveredAt     = "deliveredAt"
	fieldUpdatedAt       = "updatedAt"
	fieldCreatedAt       = "createdAt"
	fieldUserID          = "userId"
)

// OrdersFirestore is used to interact with orders stored on Firestore.
type OrdersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	timeFunc           func() time.Time
}

// NewOrdersFirestore returns a new OrdersFirestore instance with given project id.
func NewOrdersFirestore(ctx context.Context, projectID string) (*OrdersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewOrdersFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewOrdersFirestoreWithClient returns a new OrdersFirestore using given client.
func NewOrdersFirestoreWithClient(fun connection.FirestoreFromContextFun) *OrdersFirestore {
	return &OrdersFirestore{
		firestoreClientFun: fun,
		timeFunc:           func() time.Time { return time.Now().UTC() },
	}
}

func (d *OrdersFirestore) ordersCollectionRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(ordersCollection)
}

// Create persists a new order and returns its document id.
func (d *OrdersFirestore) Create(ctx context.Context, order *domain.Order) (string, error) {
	if order == nil {
		return "", errors.New("order cannot be nil")
	}

	now := d.timeFunc()
	order.CreatedAt = now
	order.UpdatedAt = now

	ref, _, err := d.ordersCollectionRef(ctx).Add(ctx, order)
	if err != nil {
		return "", err
	}

	order.ID = ref.ID

	return ref.ID, nil
}

func (d *OrdersFirestore) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	docSnap, err := d.ordersCollectionRef(ctx).Doc(orderID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrOrderNotFound
		}

		return nil, err
	}

	var order domain.Order

	if err := docSnap.DataTo(&order); err != nil {
		return nil, err
	}

	order.ID = docSnap.Ref.ID

	return &order, nil
}

// GetBySession returns the single order created for the given checkout session.
func (d *OrdersFirestore) GetBySession(ctx context.Context, sessionID string) (*domain.Order, error) {
	docSnap, err := d.getBySessionSnap(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var order domain.Order

	if err := docSnap.DataTo(&order); err != nil {
		return nil, err
	}

	order.ID = docSnap.Ref.ID

	return &order, nil
}

func (d *OrdersFirestore) getBySessionSnap(ctx context.Context, sessionID string) (*firestore.DocumentSnapshot, error) {
	iter := d.ordersCollectionRef(ctx).
		Where(fieldStripeSessionID, "==", sessionID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrOrderNotFound
	}

	if err != nil {
		return nil, err
	}

	return docSnap, nil
}

func (d *OrdersFirestore) List(ctx context.Context) ([]*domain.Order, error) {
	docSnaps, err := d.ordersCollectionRef(ctx).
		OrderBy(fieldCreatedAt, firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	return toOrders(docSnaps)
}

func (d *OrdersFirestore) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	docSnaps, err := d.ordersCollectionRef(ctx).
		Where(fieldUserID, "==", userID).
		OrderBy(fieldCreatedAt, firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	return toOrders(docSnaps)
}

func toOrders(docSnaps []*firestore.DocumentSnapshot) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		var order domain.Order
		if err := docSnap.DataTo(&order); err != nil {
			return nil, err
		}

		order.ID = docSnap.Ref.ID
		orders = append(orders, &order)
	}

	return orders, nil
}

func (d *OrdersFirestore) Delete(ctx context.Context, orderID string) error {
	if orderID == "" {
		return errors.New("invalid order ID")
	}

	docRef := d.ordersCollectionRef(ctx).Doc(orderID)

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrOrderNotFound
		}

		return err
	}

	if !docSnap.Exists() {
		return ErrOrderNotFound
	}

	_, err = docRef.Delete(ctx)

	return err
}

// MarkPaidBySession flips the order matching the checkout session to paid.
// The mutation is a plain field assignment so event replays converge.
func (d *OrdersFirestore) MarkPaidBySession(ctx context.Context, sessionID, paymentIntentID string) (*domain.Order, error) {
	updates := []firestore.Update{
		{FieldPath: []string{fieldIsPaid}, Value: true},
		{FieldPath: []string{fieldStatus}, Value: domain.OrderStatusPaid},
		{FieldPath: []string{fieldUpdatedAt}, Value: d.timeFunc()},
	}

	if paymentIntentID != "" {
		updates = append(updates, firestore.Update{
			FieldPath: []string{fieldPaymentIntentID}, Value: paymentIntentID,
		})
	}

	return d.updateBySession(ctx, sessionID, updates)
}

// MarkFailedByPaymentIntent flips the matching order to failed after an
// asynchronous payment method did not clear.
func (d *OrdersFirestore) MarkFailedByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Order, error) {
	iter := d.ordersCollectionRef(ctx).
		Where(fieldPaymentIntentID, "==", paymentIntentID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrOrderNotFound
	}

	if err != nil {
		return nil, err
	}

	return d.applyUpdates(ctx, docSnap.Ref, []firestore.Update{
		{FieldPath: []string{fieldStatus}, Value: domain.OrderStatusFailed},
		{FieldPath: []string{fieldUpdatedAt}, Value: d.timeFunc()},
	})
}

// SetDisputeBySession records an opened dispute on the matching order.
func (d *OrdersFirestore) SetDisputeBySession(ctx context.Context, sessionID string, dispute *domain.DisputeDetails) (*domain.Order, error) {
	if dispute == nil {
		return nil, errors.New("dispute cannot be nil")
	}

	return d.updateBySession(ctx, sessionID, []firestore.Update{
		{FieldPath: []string{fieldIsDisputed}, Value: true},
		{FieldPath: []string{fieldDispute}, Value: dispute},
		{FieldPath: []string{fieldUpdatedAt}, Value: d.timeFunc()},
	})
}

// CloseDisputeBySession clears the dispute flag and records the final outcome.
func (d *OrdersFirestore) CloseDisputeBySession(ctx context.Context, sessionID, finalStatus string, closedAt time.Time) (*domain.Order, error) {
	return d.updateBySession(ctx, sessionID, []firestore.Update{
		{FieldPath: []string{fieldIsDisputed}, Value: false},
		{FieldPath: []string{fieldDispute, "status"}, Value: finalStatus},
		{FieldPath: []string{fieldDispute, "closedAt"}, Value: closedAt},
		{FieldPath: []string{fieldUpdatedAt}, Value: d.timeFunc()},
	})
}

// MarkDelivered transitions a paid order to delivered. The precondition is
// checked inside a transaction so a concurrent status change cannot slip in.
func (d *OrdersFirestore) MarkDelivered(ctx context.Context, orderID string) (*domain.Order, error) {
	docRef := d.ordersCollectionRef(ctx).Doc(orderID)
	now := d.timeFunc()

	err := d.firestoreClientFun(ctx).RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrOrderNotFound
			}

			return err
		}

		var order domain.Order
		if err := docSnap.DataTo(&order); err != nil {
			return err
		}

		if order.Status != domain.OrderStatusPaid {
			return ErrOrderNotPaid
		}

		return tx.Update(docRef, []firestore.Update{
			{FieldPath: []string{fieldStatus}, Value: domain.OrderStatusDelivered},
			{FieldPath: []string{fieldDeliveredAt}, Value: now},
			{FieldPath: []string{fieldUpdatedAt}, Value: now},
		})
	}, firestore.MaxAttempts(10))
	if err != nil {
		return nil, err
	}

	return d.Get(ctx, orderID)
}

func (d *OrdersFirestore) updateBySession(ctx context.Context, sessionID string, updates []firestore.Update) (*domain.Order, error) {
	docSnap, err := d.getBySessionSnap(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return d.applyUpdates(ctx, docSnap.Ref, updates)
}

func (d *OrdersFirestore) applyUpdates(ctx context.Context, docRef *firestore.DocumentRef, updates []firestore.Update) (*domain.Order, error) {
	if _, err := docRef.Update(ctx, updates); err != nil {
		return nil, err
	}

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		return nil, err
	}

	var order domain.Order

	if err := docSnap.DataTo(&order); err != nil {
		return nil, err
	}

	order.ID = docSnap.Ref.ID

	return &order, nil
}
