package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/techhaven/store-backend/framework/connection"
	"github.com/techhaven/store-backend/logger"
	"github.com/techhaven/store-backend/settings/dal"
	"github.com/techhaven/store-backend/settings/domain"
)

const defaultRefundMessage = "Refunds are currently not available."

// ErrRefundsNotAllowed is returned by the refund gate for every refund
// request. Refund execution is not part of this backend.
var ErrRefundsNotAllowed = errors.New("Refunds are not allowed.")

//go:generate mockery --name AdminSettingsService --output=./mocks
type AdminSettingsService interface {
	Get(ctx context.Context) (*domain.AdminSettings, error)
	ToggleRefund(ctx context.Context, enable bool) (*domain.AdminSettings, string, error)
	RefundGate(ctx context.Context) (string, error)
}

type Service struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	dal            dal.AdminSettingsDAL
}

func NewAdminSettingsService(log logger.Provider, conn *connection.Connection) *Service {
	return &Service{
		loggerProvider: log,
		conn:           conn,
		dal:            dal.NewAdminSettingsFirestoreWithClient(conn.Firestore),
	}
}

func (s *Service) Get(ctx context.Context) (*domain.AdminSettings, error) {
	return s.dal.Get(ctx)
}

// ToggleRefund upserts the refund toggle and returns the stored settings
// together with a human readable confirmation.
func (s *Service) ToggleRefund(ctx context.Context, enable bool) (*domain.AdminSettings, string, error) {
	settings, err := s.dal.SetRefundEnabled(ctx, enable)
	if err != nil {
		return nil, "", err
	}

	state := "disabled"
	if enable {
		state = "enabled"
	}

	s.loggerProvider(ctx).Infof("refunds toggled to %s", state)

	return settings, fmt.Sprintf("Refunds are now %s", state), nil
}

// RefundGate always refuses the refund and returns the operator configured
// message. Settings read failures fall back to the default message, the
// refusal itself never fails.
func (s *Service) RefundGate(ctx context.Context) (string, error) {
	settings, err := s.dal.Get(ctx)
	if err != nil {
		s.loggerProvider(ctx).Warningf("refund gate settings read failed: %s", err)
		return defaultRefundMessage, ErrRefundsNotAllowed
	}

	message := settings.RefundMessage
	if message == "" {
		message = defaultRefundMessage
	}

	return message, ErrRefundsNotAllowed
}
