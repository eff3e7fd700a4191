// internal/interfaces/http/handlers/voucher.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/restaurant-storefront/internal/domain/voucher"
	"github.com/your-org/restaurant-storefront/internal/gateway"
	"github.com/your-org/restaurant-storefront/internal/interfaces/http/middleware"
)

// VoucherHandler handles voucher endpoints
type VoucherHandler struct {
	vouchers *voucher.Service
	log      *logrus.Entry
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(vouchers *voucher.Service, log *logrus.Entry) *VoucherHandler {
	return &VoucherHandler{
		vouchers: vouchers,
		log:      log,
	}
}

// MyVouchers handles GET /user/vouchers
func (h *VoucherHandler) MyVouchers(c *gin.Context) {
	token, _ := middleware.GetBearerTokenFromContext(c)
	showUsed, _ := strconv.ParseBool(c.DefaultQuery("show_used", "false"))

	claims, err := h.vouchers.MyVouchers(c.Request.Context(), token, showUsed)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": gateway.UserMessage(err, "Failed to load your vouchers."),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vouchers retrieved successfully",
		"data":    claims,
	})
}

// Claimable handles GET /user/vouchers/claimable
func (h *VoucherHandler) Claimable(c *gin.Context) {
	token, _ := middleware.GetBearerTokenFromContext(c)

	vouchers, err := h.vouchers.ClaimableVouchers(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": gateway.UserMessage(err, "Failed to load claimable vouchers."),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Claimable vouchers retrieved successfully",
		"data":    vouchers,
	})
}

// Claim handles POST /user/vouchers/claim/:voucherId
func (h *VoucherHandler) Claim(c *gin.Context) {
	token, _ := middleware.GetBearerTokenFromContext(c)

	voucherID, err := strconv.ParseUint(c.Param("voucherId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid voucher ID",
		})
		return
	}

	if err := h.vouchers.Claim(c.Request.Context(), token, uint(voucherID)); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": gateway.UserMessage(err, "Failed to claim voucher."),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Voucher claimed successfully",
	})
}

// RemoveClaim handles DELETE /user/vouchers/:userVoucherId
func (h *VoucherHandler) RemoveClaim(c *gin.Context) {
	token, _ := middleware.GetBearerTokenFromContext(c)

	userVoucherID, err := strconv.ParseUint(c.Param("userVoucherId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid voucher ID",
		})
		return
	}

	if err := h.vouchers.RemoveClaim(c.Request.Context(), token, uint(userVoucherID)); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": gateway.UserMessage(err, "Failed to remove voucher."),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Voucher removed successfully",
	})
}
