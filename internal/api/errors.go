package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-api/backend/internal/middleware"
	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// respondError maps service errors onto status codes. Store details are logged, never returned.
func respondError(c *gin.Context, op string, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, types.MessageResponse{
			Message: "Recipe validation failed",
			Errors:  vErr.Messages,
		})
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, types.MessageResponse{Message: "Recipe not found"})
	case errors.Is(err, service.ErrNoRecipesFound):
		c.JSON(http.StatusNotFound, types.MessageResponse{Message: "No recipes found"})
	default:
		log.Printf("[API] %s failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, types.MessageResponse{Message: middleware.InternalServerError})
	}
}

func badRequestBody(c *gin.Context, err error) {
	log.Printf("[API] rejected request body for %s: %v", c.FullPath(), err)
	c.JSON(http.StatusBadRequest, types.MessageResponse{Message: "Invalid request body"})
}
