package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	testTools "github.com/techhaven/store-backend/common/test_tools"
	"github.com/techhaven/store-backend/logger"
	"github.com/techhaven/store-backend/settings/domain"
	"github.com/techhaven/store-backend/settings/service"
	serviceMocks "github.com/techhaven/store-backend/settings/service/mocks"
)

func TestAdminSettings_RefundHandler(t *testing.T) {
	svc := &serviceMocks.AdminSettingsService{}
	svc.On("RefundGate", mock.AnythingOfType("*gin.Context")).
		Return("Refunds are currently not available.", service.ErrRefundsNotAllowed)

	h := &AdminSettings{
		loggerProvider: logger.FromContext,
		service:        svc,
	}

	ctx := testTools.GenerateCtxWithJSONAndParams(t, nil, nil)

	err := h.RefundHandler(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, ctx.Writer.Status())
}

func TestAdminSettings_ToggleRefundHandler(t *testing.T) {
	tests := []struct {
		name    string
		enable  bool
		message string
	}{
		{name: "enable", enable: true, message: "Refunds are now enabled"},
		{name: "disable", enable: false, message: "Refunds are now disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMocks.AdminSettingsService{}
			svc.On("ToggleRefund", mock.AnythingOfType("*gin.Context"), tt.enable).
				Return(&domain.AdminSettings{RefundEnabled: tt.enable}, tt.message, nil)

			h := &AdminSettings{
				loggerProvider: logger.FromContext,
				service:        svc,
			}

			ctx := testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"enable": tt.enable}, nil)

			err := h.ToggleRefundHandler(ctx)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, ctx.Writer.Status())
		})
	}
}
