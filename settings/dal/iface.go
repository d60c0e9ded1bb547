package dal

import (
	"context"

	"github.com/techhaven/store-backend/settings/domain"
)

//go:generate mockery --name AdminSettingsDAL --output=./mocks
type AdminSettingsDAL interface {
	Get(ctx context.Context) (*domain.AdminSettings, error)
	SetRefundEnabled(ctx context.Context, enabled bool) (*domain.AdminSettings, error)
}
