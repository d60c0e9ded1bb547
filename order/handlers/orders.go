package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techhaven/store-backend/framework/connection"
	"github.com/techhaven/store-backend/framework/web"
	"github.com/techhaven/store-backend/logger"
	"github.com/techhaven/store-backend/order/dal"
	"github.com/techhaven/store-backend/order/service"
)

var (
	ErrMissingSessionID = errors.New("session_id is required")
	ErrMissingOrderID   = errors.New("order ID is required")
	ErrMissingUserID    = errors.New("user ID is required")
)

type Orders struct {
	loggerProvider logger.Provider
	service        service.OrderService
}

// NewOrders creates new order package handlers
func NewOrders(loggerProvider logger.Provider, conn *connection.Connection, gateway service.PaymentGateway) *Orders {
	return &Orders{
		loggerProvider,
		service.NewOrderService(loggerProvider, conn, gateway),
	}
}

// CreateCheckoutSessionHandler opens a hosted checkout session for the
// posted cart and returns the redirect URL.
func (h *Orders) CreateCheckoutSessionHandler(ctx *gin.Context) error {
	var req service.CheckoutRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	res, err := h.service.CreateCheckoutSession(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingRequiredFields),
			errors.Is(err, service.ErrInvalidAmount):
			return web.NewRequestError(err, http.StatusBadRequest)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, res, http.StatusOK)
}

// VerifyPaymentHandler is the pull path for the storefront success page.
func (h *Orders) VerifyPaymentHandler(ctx *gin.Context) error {
	sessionID := ctx.Query("session_id")
	if sessionID == "" {
		return web.NewRequestError(ErrMissingSessionID, http.StatusBadRequest)
	}

	order, err := h.service.VerifyPayment(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotCompleted):
			return web.NewRequestError(err, http.StatusBadRequest)
		case errors.Is(err, dal.ErrOrderNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"message": "Payment verified and order updated",
		"order":   order,
	}, http.StatusOK)
}

func (h *Orders) ListOrdersHandler(ctx *gin.Context) error {
	orders, err := h.service.ListOrders(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{
		"message": "Orders fetched successfully",
		"orders":  orders,
	}, http.StatusOK)
}

func (h *Orders) ListOrdersByUserHandler(ctx *gin.Context) error {
	userID := ctx.Param("userID")
	if userID == "" {
		return web.NewRequestError(ErrMissingUserID, http.StatusBadRequest)
	}

	orders, err := h.service.ListOrdersByUser(ctx, userID)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, orders, http.StatusOK)
}

func (h *Orders) DeleteOrderHandler(ctx *gin.Context) error {
	orderID := ctx.Param("orderID")
	if orderID == "" {
		return web.NewRequestError(ErrMissingOrderID, http.StatusBadRequest)
	}

	if err := h.service.DeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, dal.ErrOrderNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"message": "Order deleted successfully."}, http.StatusOK)
}

type markDeliveredRequest struct {
	OrderID string `json:"orderId"`
}

// MarkDeliveredHandler transitions a paid order to delivered. Unpaid orders
// are rejected with a conflict.
func (h *Orders) MarkDeliveredHandler(ctx *gin.Context) error {
	var req markDeliveredRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if req.OrderID == "" {
		return web.NewRequestError(ErrMissingOrderID, http.StatusBadRequest)
	}

	order, err := h.service.MarkDelivered(ctx, req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, dal.ErrOrderNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		case errors.Is(err, dal.ErrOrderNotPaid):
			return web.NewRequestError(err, http.StatusConflict)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, gin.H{
		"message": "Order marked as delivered.",
		"order":   order,
	}, http.StatusOK)
}
