// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/restaurant-storefront/internal/config"
	"github.com/your-org/restaurant-storefront/internal/domain/cart"
	"github.com/your-org/restaurant-storefront/internal/domain/chat"
	"github.com/your-org/restaurant-storefront/internal/domain/checkout"
	"github.com/your-org/restaurant-storefront/internal/domain/voucher"
	"github.com/your-org/restaurant-storefront/internal/gateway"
	"github.com/your-org/restaurant-storefront/internal/interfaces/http/handlers"
	"github.com/your-org/restaurant-storefront/internal/interfaces/http/middleware"
)

// SetupRoutes wires the storefront API surface
func SetupRoutes(rg *gin.RouterGroup, cfg *config.Config, redisClient *redis.Client, logger *logrus.Logger) {
	log := logger.WithField("component", "api")

	backend := gateway.NewClient(cfg, logger.WithField("component", "gateway"))
	archive := cart.NewRedisArchiver(redisClient, cfg.Cart.SnapshotTTL)
	carts := cart.NewManager(backend, archive, logger.WithField("component", "cart"))

	resolver := voucher.Resolver{ClampToZero: cfg.Voucher.ClampDiscountToZero}
	vouchers := voucher.NewService(backend, logger.WithField("component", "voucher"))
	checkoutService := checkout.NewService(backend, carts, resolver, cfg.Payment.Bank, logger.WithField("component", "checkout"))
	chatService := chat.NewService(cfg, logger.WithField("component", "chat"))

	cartHandler := handlers.NewCartHandler(carts, log)
	voucherHandler := handlers.NewVoucherHandler(vouchers, log)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, carts, vouchers, log)
	chatHandler := handlers.NewChatHandler(chatService, log)

	// Authenticated storefront routes
	user := rg.Group("/user")
	user.Use(middleware.AuthMiddleware(cfg))
	{
		user.GET("/cart", cartHandler.GetCart)
		user.POST("/cart", cartHandler.AddToCart)
		user.PUT("/cart/:productId", cartHandler.UpdateQuantity)
		user.DELETE("/cart/:productId", cartHandler.RemoveFromCart)
		user.DELETE("/cart", cartHandler.ClearCart)

		user.GET("/vouchers", voucherHandler.MyVouchers)
		user.GET("/vouchers/claimable", voucherHandler.Claimable)
		user.POST("/vouchers/claim/:voucherId", voucherHandler.Claim)
		user.DELETE("/vouchers/:userVoucherId", voucherHandler.RemoveClaim)
	}

	// Checkout and payment routes
	orders := rg.Group("")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.POST("/orders", checkoutHandler.Submit)
		orders.GET("/orders/:id/status", checkoutHandler.OrderStatus)
		orders.GET("/checkout/quote", checkoutHandler.Quote)
		orders.GET("/payment/result", checkoutHandler.PaymentResult)
		orders.GET("/payment/bank-transfer/:orderId", checkoutHandler.BankInstructions)
	}

	// Chatbot proxy (no auth, nutrition advice is public)
	rg.POST("/chat", chatHandler.Ask)
}
