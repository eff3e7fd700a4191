package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/your-org/restaurant-storefront/internal/config"
	"github.com/your-org/restaurant-storefront/internal/pkg/auth"
)

// Mints a development session token against the shared JWT secret so the
// storefront API can be exercised without the external auth service.
func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: go run scripts/generate_token.go <user_id> <email> [admin]")
	}

	userID, err := strconv.ParseUint(os.Args[1], 10, 32)
	if err != nil || userID == 0 {
		log.Fatal("user_id must be a positive integer")
	}
	email := os.Args[2]
	isAdmin := len(os.Args) > 3 && os.Args[3] == "admin"

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration:", err)
	}

	manager := auth.NewJWTManager(cfg)
	token, err := manager.GenerateAccessToken(uint(userID), email, isAdmin)
	if err != nil {
		log.Fatal("Error generating token:", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		log.Fatal("Token verification failed:", err)
	}

	fmt.Printf("User ID: %d\n", claims.UserID)
	fmt.Printf("Email: %s\n", claims.Email)
	fmt.Printf("Expires: %s\n", claims.ExpiresAt.Time)
	fmt.Printf("Token: %s\n", token)
}
