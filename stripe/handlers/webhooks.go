package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techhaven/store-backend/framework/connection"
	"github.com/techhaven/store-backend/framework/web"
	"github.com/techhaven/store-backend/logger"
	"github.com/techhaven/store-backend/notify"
	"github.com/techhaven/store-backend/stripe/service"
)

type Stripe struct {
	loggerProvider logger.Provider
	webhookService service.WebhookService
}

// NewStripe creates new stripe package handlers
func NewStripe(loggerProvider logger.Provider, conn *connection.Connection, stripeClient *service.Client, notifier notify.Sink) *Stripe {
	return &Stripe{
		loggerProvider,
		service.NewStripeWebhookService(loggerProvider, conn, stripeClient, notifier),
	}
}

// WebhookHandler handles events from stripe. Verification runs over the raw
// request body, so no body parsing middleware may be mounted on this route.
func (h *Stripe) WebhookHandler(ctx *gin.Context) error {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	signature := ctx.Request.Header.Get("Stripe-Signature")
	if signature == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	apiVersion := ctx.Query("api_version")

	if err := h.webhookService.HandleEvent(ctx, body, signature, apiVersion); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	return web.Respond(ctx, gin.H{"received": true}, http.StatusOK)
}
