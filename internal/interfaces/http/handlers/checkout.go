// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/restaurant-storefront/internal/domain/cart"
	"github.com/your-org/restaurant-storefront/internal/domain/checkout"
	"github.com/your-org/restaurant-storefront/internal/domain/order"
	"github.com/your-org/restaurant-storefront/internal/domain/voucher"
	"github.com/your-org/restaurant-storefront/internal/gateway"
	"github.com/your-org/restaurant-storefront/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout and payment endpoints
type CheckoutHandler struct {
	checkout *checkout.Service
	carts    *cart.Manager
	vouchers *voucher.Service
	log      *logrus.Entry
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, carts *cart.Manager, vouchers *voucher.Service, log *logrus.Entry) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkoutService,
		carts:    carts,
		vouchers: vouchers,
		log:      log,
	}
}

// Submit handles POST /orders (all three payment paths)
func (h *CheckoutHandler) Submit(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	token, _ := middleware.GetBearerTokenFromContext(c)

	var req checkout.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.checkout.Submit(c.Request.Context(), userID, token, &req)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to place an order"})
		case errors.Is(err, checkout.ErrSubmitInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": "Your order is already being processed"})
		case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrInvalidPaymentMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": gateway.UserMessage(err, "Failed to place order."),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout submitted successfully",
		"data":    result,
	})
}

// Quote handles GET /checkout/quote, totals under the selected voucher
func (h *CheckoutHandler) Quote(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	token, _ := middleware.GetBearerTokenFromContext(c)

	store, err := h.carts.ForUser(c.Request.Context(), userID, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to view your order total"})
		return
	}

	var claim *voucher.UserVoucher
	if raw := c.Query("user_voucher_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid voucher ID"})
			return
		}

		claims, err := h.vouchers.MyVouchers(c.Request.Context(), token, false)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": gateway.UserMessage(err, "Failed to load your vouchers."),
			})
			return
		}

		if found, ok := voucher.FindClaim(claims, uint(id)); ok {
			claim = found
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quote computed successfully",
		"data":    h.checkout.QuoteFor(store.Items(), claim),
	})
}

// PaymentResult handles GET /payment/result, the e-wallet return callback
func (h *CheckoutHandler) PaymentResult(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	token, _ := middleware.GetBearerTokenFromContext(c)

	ok, err := h.checkout.HandlePaymentResult(c.Request.Context(), userID, token, c.Query("resultCode"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to confirm your payment"})
		return
	}

	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"message": "Payment failed or was cancelled",
			"data":    gin.H{"status": "failed"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment completed successfully",
		"data":    gin.H{"status": "success"},
	})
}

// BankInstructions handles GET /payment/bank-transfer/:orderId
func (h *CheckoutHandler) BankInstructions(c *gin.Context) {
	token, _ := middleware.GetBearerTokenFromContext(c)

	orderID, err := parseOrderID(c, "orderId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	instructions, err := h.checkout.Instructions(c.Request.Context(), token, orderID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": gateway.UserMessage(err, "Failed to load order details."),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Transfer instructions retrieved successfully",
		"data":    instructions,
	})
}

// OrderStatus handles GET /orders/:id/status, the manual payment status check
func (h *CheckoutHandler) OrderStatus(c *gin.Context) {
	token, _ := middleware.GetBearerTokenFromContext(c)

	orderID, err := parseOrderID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	status, err := h.checkout.CheckPaymentStatus(c.Request.Context(), token, orderID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": gateway.UserMessage(err, "Failed to check payment status."),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status retrieved successfully",
		"data": gin.H{
			"order_id":   status.OrderID,
			"status":     status.Status,
			"paid":       status.Paid,
			"can_cancel": order.CanCancel(order.Status(status.Status)),
		},
	})
}

func parseOrderID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
