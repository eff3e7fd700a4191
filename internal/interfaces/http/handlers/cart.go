// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/restaurant-storefront/internal/domain/cart"
	"github.com/your-org/restaurant-storefront/internal/gateway"
	"github.com/your-org/restaurant-storefront/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts *cart.Manager
	log   *logrus.Entry
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, log *logrus.Entry) *CartHandler {
	return &CartHandler{
		carts: carts,
		log:   log,
	}
}

// store resolves the authenticated user's cart store, or answers 401
func (h *CartHandler) store(c *gin.Context) (*cart.Store, bool) {
	userID, _ := middleware.GetUserIDFromContext(c)
	token, _ := middleware.GetBearerTokenFromContext(c)

	store, err := h.carts.ForUser(c.Request.Context(), userID, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Please sign in to manage your cart",
		})
		return nil, false
	}
	return store, true
}

// GetCart handles GET /user/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	// Refresh from the backend; a fetch failure degrades to an empty cart
	_ = store.FetchCart(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cart.NewResponse(store),
	})
}

// AddToCart handles POST /user/cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	var req cart.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := store.AddToCart(c.Request.Context(), req.Product, req.Quantity); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": gateway.UserMessage(err, "Failed to add item to cart."),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cart.NewResponse(store),
	})
}

// UpdateQuantity handles PUT /user/cart/:productId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	productID, err := parseProductID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req cart.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := store.UpdateQuantity(c.Request.Context(), productID, *req.Quantity); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": gateway.UserMessage(err, "Failed to update quantity."),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantity updated successfully",
		"data":    cart.NewResponse(store),
	})
}

// RemoveFromCart handles DELETE /user/cart/:productId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	productID, err := parseProductID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if err := store.RemoveFromCart(c.Request.Context(), productID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": gateway.UserMessage(err, "Failed to remove item."),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cart.NewResponse(store),
	})
}

// ClearCart handles DELETE /user/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	// Best-effort on the remote side; the local cart always empties
	_ = store.ClearCart(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    cart.NewResponse(store),
	})
}

func parseProductID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
