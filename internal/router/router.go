package router

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-api/backend/internal/api"
	"github.com/pageza/recipe-api/backend/internal/middleware"
)

// Options configures the route table
type Options struct {
	// Prefix is prepended to every recipe route ("" or "/api")
	Prefix      string
	CORSOrigins []string
	// TrustedProxies may set the client IP through X-Forwarded-For; nil trusts none
	TrustedProxies []string
	// CreateLimiter guards POST /recipes when set
	CreateLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(
	opts Options,
	recipeHandler *api.RecipeHandler,
	imageHandler *api.ImageHandler,
	healthHandler *api.HealthHandler,
) (*gin.Engine, error) {
	router := gin.New()
	// match on the escaped path so %2F stays inside a single parameter
	router.UseRawPath = true
	router.UnescapePathValues = true
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	router.Use(gin.Logger(), middleware.Recovery())
	router.Use(middleware.CORS(opts.CORSOrigins))
	router.NoRoute(middleware.NotFound())

	router.GET("/", api.Root)
	router.GET("/health", healthHandler.HealthCheck)

	createChain := []gin.HandlerFunc{}
	if opts.CreateLimiter != nil {
		createChain = append(createChain, opts.CreateLimiter.Middleware())
	}
	createChain = append(createChain, recipeHandler.CreateRecipe)

	recipes := router.Group(opts.Prefix + "/recipes")
	{
		recipes.POST("", createChain...)
		recipes.GET("", recipeHandler.ListRecipes)
		recipes.GET("/title/:title", recipeHandler.GetRecipeByTitle)
		recipes.GET("/author/:author", recipeHandler.ListRecipesByAuthor)
		recipes.GET("/difficulty/:difficulty", recipeHandler.ListRecipesByDifficulty)
		recipes.PUT("/:id/difficulty", recipeHandler.UpdateDifficulty)
		recipes.PUT("/title/:title/time", recipeHandler.UpdateTimesByTitle)
		recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
		recipes.POST("/images", imageHandler.UploadImage)
	}

	return router, nil
}
