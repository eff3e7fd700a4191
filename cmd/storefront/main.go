// cmd/storefront/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/restaurant-storefront/internal/config"
	redisConn "github.com/your-org/restaurant-storefront/internal/infrastructure/database/redis"
	"github.com/your-org/restaurant-storefront/internal/interfaces/http"
	"github.com/your-org/restaurant-storefront/internal/pkg/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg)

	log.Printf("🍜 Starting %s v%s (%s)", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis
	redisClient, err := redisConn.NewConnection(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	log.Println("✅ Redis connection established")

	// Create and start HTTP server
	server := http.NewServer(cfg, redisClient.GetClient(), logger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("❌ HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server exited")
}
