package main

import (
	"context"
	"log"

	"github.com/keysafe-protocol/keysafe/internal/server"
	"github.com/keysafe-protocol/keysafe/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
