package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// Root reports that the API is up
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Recipe API running successfully!"})
}

// HealthHandler checks the store and, when configured, Redis
type HealthHandler struct {
	store database.Provider
	redis *redis.Client
}

// NewHealthHandler creates a HealthHandler; redisClient may be nil
func NewHealthHandler(store database.Provider, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{store: store, redis: redisClient}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{"status": "healthy", "database": "up"}

	db, err := h.store.DB(ctx)
	if err == nil {
		err = database.HealthCheck(ctx, db)
	}
	if err != nil {
		log.Printf("[Health] database check failed: %v", err)
		status = http.StatusServiceUnavailable
		body["status"] = "unhealthy"
		body["database"] = "down"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			log.Printf("[Health] redis check failed: %v", err)
			body["redis"] = "down"
		} else {
			body["redis"] = "up"
		}
	}

	c.JSON(status, body)
}
