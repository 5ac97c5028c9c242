package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/playpong/backend/internal/api"
	"github.com/playpong/backend/internal/config"
	"github.com/playpong/backend/internal/game"
	"github.com/playpong/backend/internal/loop"
	"github.com/playpong/backend/internal/ws"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	ctx := context.Background()

	// Start the viewer hub
	hub := ws.NewHub()
	go hub.Run(ctx)

	// Start the simulation loop, publishing each frame to the hub
	runner := loop.NewRunner(
		game.NewState(),
		time.Duration(cfg.TickIntervalMs)*time.Millisecond,
		float64(cfg.MaxFrameDeltaMs),
		hub,
	)
	go runner.Run(ctx)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	api.SetupRoutes(router, runner, hub, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting PlayPong server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
