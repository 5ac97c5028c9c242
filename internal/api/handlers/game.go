package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playpong/backend/internal/game"
	"github.com/playpong/backend/internal/loop"
)

// GetGameState returns the current simulation snapshot for polling renderers.
// Board dimensions ride along so a renderer can size its canvas without
// hardcoding them.
func GetGameState(runner *loop.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"board": gin.H{
				"width":  game.BoardWidth,
				"height": game.BoardHeight,
			},
			"state": runner.State(),
		})
	}
}
