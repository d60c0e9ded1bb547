package domain

import (
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusDelivered OrderStatus = "delivered"
)

// CartLine is an immutable snapshot of a single purchased product.
type CartLine struct {
	Name     string  `firestore:"name" json:"name"`
	Image    string  `firestore:"image,omitempty" json:"image,omitempty"`
	Price    float64 `firestore:"price" json:"price"`
	Quantity int64   `firestore:"quantity" json:"quantity"`
}

// DisputeDetails holds the state of a payment dispute opened against an order.
type DisputeDetails struct {
	ID            string    `firestore:"id" json:"id"`
	Reason        string    `firestore:"reason" json:"reason"`
	Amount        int64     `firestore:"amount" json:"amount"`
	Status        string    `firestore:"status" json:"status"`
	Created       time.Time `firestore:"created" json:"created"`
	EvidenceDueBy time.Time `firestore:"evidenceDueBy" json:"evidenceDueBy"`
	ClosedAt      time.Time `firestore:"closedAt,omitempty" json:"closedAt,omitempty"`
}

// Order is a store order document. An order is created pending when a
// checkout session is opened and is mutated afterwards only through
// field-set updates driven by payment events.
type Order struct {
	ID                   string          `firestore:"-" json:"id"`
	UserID               string          `firestore:"userId,omitempty" json:"userId,omitempty"`
	UserName             string          `firestore:"userName" json:"userName"`
	UserEmail            string          `firestore:"userEmail" json:"userEmail"`
	Phone                string          `firestore:"phone,omitempty" json:"phone,omitempty"`
	Address              string          `firestore:"address,omitempty" json:"address,omitempty"`
	Cart                 []CartLine      `firestore:"cart" json:"cart"`
	Amount               float64         `firestore:"amount" json:"amount"`
	Currency             string          `firestore:"currency" json:"currency"`
	StripeSessionID      string          `firestore:"stripeSessionId" json:"stripeSessionId"`
	PaymentIntentID      string          `firestore:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	Status               OrderStatus     `firestore:"status" json:"status"`
	RefundPolicyAccepted bool            `firestore:"refundPolicyAccepted" json:"refundPolicyAccepted"`
	IsPaid               bool            `firestore:"isPaid" json:"isPaid"`
	IsDisputed           bool            `firestore:"isDisputed" json:"isDisputed"`
	IsRefunded           bool            `firestore:"isRefunded" json:"isRefunded"`
	Dispute              *DisputeDetails `firestore:"dispute,omitempty" json:"dispute,omitempty"`
	DeliveredAt          *time.Time      `firestore:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt            time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time       `firestore:"updatedAt" json:"updatedAt"`
}
