package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InternalServerError is the only detail a client sees for unexpected failures
const InternalServerError = "Internal Server Error"

// Recovery logs panics and answers with the generic JSON error
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		log.Printf("[Recovery] panic serving %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, err, debug.Stack())
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: InternalServerError})
	})
}

// NotFound answers unknown routes in the same JSON shape as handler errors
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Route not found"})
	}
}
