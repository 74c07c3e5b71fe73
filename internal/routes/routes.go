package routes

import (
	"net/http"

	"elgrace_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole API surface under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	h.RegisterAll(v1)
}
