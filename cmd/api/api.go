package api

import (
	"net/http"
	"os"

	"github.com/techhaven/store-backend/framework/connection"
	"github.com/techhaven/store-backend/framework/mid"
	"github.com/techhaven/store-backend/framework/web"
	"github.com/techhaven/store-backend/logger"
	"github.com/techhaven/store-backend/notify"
	orderHandlers "github.com/techhaven/store-backend/order/handlers"
	settingsHandlers "github.com/techhaven/store-backend/settings/handlers"
	stripeHandlers "github.com/techhaven/store-backend/stripe/handlers"
	stripeService "github.com/techhaven/store-backend/stripe/service"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown     chan os.Signal
	log          *logger.Logging
	conn         *connection.Connection
	stripeClient *stripeService.Client
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection, stripeClient *stripeService.Client) *API {
	return &API{
		shutdown,
		logging,
		conn,
		stripeClient,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	notifier := notify.NewDispatcher(loggerProvider,
		notify.NewSlackPublisher(),
		notify.NewEmailPublisher(),
	)

	orders := orderHandlers.NewOrders(loggerProvider, a.conn, a.stripeClient)
	adminSettings := settingsHandlers.NewAdminSettings(loggerProvider, a.conn)
	stripe := stripeHandlers.NewStripe(loggerProvider, a.conn, a.stripeClient, notifier)

	// STOREFRONT ENDPOINTS
	ordersGroup := web.NewGroup(app, "/api/orders")
	{
		ordersGroup.Post("/create-checkout-session", orders.CreateCheckoutSessionHandler)
		ordersGroup.Get("/verify-payment", orders.VerifyPaymentHandler)
		ordersGroup.Post("/refund", adminSettings.RefundHandler)
		ordersGroup.Get("/orders", orders.ListOrdersHandler)
		ordersGroup.Get("/order/:userID", orders.ListOrdersByUserHandler, mid.ValidatePathParamNotEmpty("userID"))
		ordersGroup.Delete("/orders/:orderID", orders.DeleteOrderHandler, mid.ValidatePathParamNotEmpty("orderID"))
	}

	// ADMIN ENDPOINTS
	adminGroup := web.NewGroup(app, "/api/admin")
	{
		adminGroup.Post("/delivered", orders.MarkDeliveredHandler)
		adminGroup.Post("/toggle-refund", adminSettings.ToggleRefundHandler)
		adminGroup.Get("/settings", adminSettings.GetSettingsHandler)
	}

	// WEBHOOKS - signature is verified over the raw body, keep this route
	// free of body parsing middleware.
	webhooks := web.NewGroup(app, "/webhooks/v1")
	{
		webhooks.Post("/stripe", stripe.WebhookHandler)
	}

	return app
}
