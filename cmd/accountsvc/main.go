package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/apponislam/vinies709-backend/internal/app"
	"github.com/apponislam/vinies709-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := app.Run(cfg, logger); err != nil {
		log.Fatalf("app: %v", err)
	}
}
