package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"paperstash/config"
	"paperstash/internal/services"

	"github.com/google/uuid"
)

// token prints a bearer token for local testing against the API.
func main() {
	userFlag := flag.String("user", "", "User id (uuid); a random one is used when empty")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			log.Fatalf("invalid user id: %v", err)
		}
		userID = parsed
	}

	cfg := config.LoadConfig()
	token, err := services.NewAuthService(cfg.JWTSecret, *ttl).NewAccessToken(userID)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}
