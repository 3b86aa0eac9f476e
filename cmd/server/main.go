package main

import (
	"context"
	"log"

	"voice_relay/config"
	"voice_relay/internal/server"

	_ "voice_relay/cmd/server/docs"
)

// @title           Voice Relay API
// @version         1.0
// @description     Relays voice conversion requests to Eden AI.

// @host      localhost:8000
// @BasePath  /

func main() {
	// Configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	// Run
	ctx := context.Background()
	s, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Telemetry error: %s", err)
	}
	if err := s.Run(ctx, cfg); err != nil {
		log.Fatalf("Server error: %s", err)
	}
}
