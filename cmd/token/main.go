// Command token mints a bearer token for local testing:
//
//	go run ./cmd/token -user alice -ttl 2h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"character-chat-be/internal/config"
	"character-chat-be/internal/pkg/serverutils"

	"github.com/fatih/color"
)

func main() {
	userId := flag.String("user", "", "user id to put in the token")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_TTL_MINUTES)")
	flag.Parse()

	cfg := config.Load()
	if cfg.Auth.JwtSecret == "" {
		color.Red("JWT_SECRET is not set")
		os.Exit(1)
	}
	if *userId == "" {
		color.Red("-user is required")
		flag.Usage()
		os.Exit(2)
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := serverutils.GenerateToken(cfg.Auth.JwtSecret, *userId, lifetime)
	if err != nil {
		color.Red("Failed to sign token: %v", err)
		os.Exit(1)
	}

	color.Cyan("user %s, expires %s", *userId, time.Now().Add(lifetime).Format(time.RFC3339))
	fmt.Println(token)
}
