package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/playpong/backend/internal/api/handlers"
	"github.com/playpong/backend/internal/config"
	"github.com/playpong/backend/internal/loop"
	"github.com/playpong/backend/internal/middleware"
	"github.com/playpong/backend/internal/ws"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, runner *loop.Runner, hub *ws.Hub, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] No-cache headers enabled for all routes")
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		// Game endpoints
		game := v1.Group("/game")
		{
			game.GET("/state", handlers.GetGameState(runner))
			game.GET("/ws", middleware.WebSocketCORSCheck(cfg), ws.HandleWebSocket(hub))
		}
	}
}
