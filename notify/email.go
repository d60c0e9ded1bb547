package notify

import (
	"context"

	"github.com/techhaven/store-backend/mailer"
)

// EmailPublisher delivers notifications to the store admin inbox.
type EmailPublisher struct{}

func NewEmailPublisher() *EmailPublisher {
	return &EmailPublisher{}
}

func (p *EmailPublisher) Publish(ctx context.Context, n *Notification) error {
	sn := &mailer.SimpleNotification{
		Subject:    n.Subject,
		Body:       assembleEmail(n),
		Categories: []string{mailer.CategoryPayments},
	}

	return mailer.SendAdminNotification(sn)
}
