// Command token mints a bearer token for a member email using JWT_SECRET, for
// local development against the server.
//
//	go run ./cmd/token -email alice@example.com
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/HrisheekeshS/Bill-Split/internal/auth"
	"github.com/HrisheekeshS/Bill-Split/internal/config"
	"github.com/HrisheekeshS/Bill-Split/pkg/logging"
)

func main() {
	email := flag.String("email", "", "member email to embed in the token")
	flag.Parse()

	config.LoadEnvFile()
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	token, err := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL).Generate(*email)
	if err != nil {
		slog.Error("Failed to generate token", "email", *email, "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
