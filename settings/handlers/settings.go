package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techhaven/store-backend/framework/connection"
	"github.com/techhaven/store-backend/framework/web"
	"github.com/techhaven/store-backend/logger"
	"github.com/techhaven/store-backend/settings/service"
)

type AdminSettings struct {
	loggerProvider logger.Provider
	service        service.AdminSettingsService
}

// NewAdminSettings creates new settings package handlers
func NewAdminSettings(loggerProvider logger.Provider, conn *connection.Connection) *AdminSettings {
	return &AdminSettings{
		loggerProvider,
		service.NewAdminSettingsService(loggerProvider, conn),
	}
}

// RefundHandler is the refund gate: every refund request is refused with
// the operator configured message.
func (h *AdminSettings) RefundHandler(ctx *gin.Context) error {
	message, err := h.service.RefundGate(ctx)

	return web.Respond(ctx, gin.H{
		"error":   err.Error(),
		"message": message,
	}, http.StatusForbidden)
}

type toggleRefundRequest struct {
	Enable bool `json:"enable"`
}

func (h *AdminSettings) ToggleRefundHandler(ctx *gin.Context) error {
	var req toggleRefundRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	settings, message, err := h.service.ToggleRefund(ctx, req.Enable)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{
		"message":  message,
		"settings": settings,
	}, http.StatusOK)
}

func (h *AdminSettings) GetSettingsHandler(ctx *gin.Context) error {
	settings, err := h.service.Get(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, settings, http.StatusOK)
}
