package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/recipe-api/backend/config"
	"github.com/pageza/recipe-api/backend/internal/api"
	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/middleware"
	"github.com/pageza/recipe-api/backend/internal/router"
	"github.com/pageza/recipe-api/backend/internal/server"
	"github.com/pageza/recipe-api/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(config.GinMode())
	log.Printf("Starting recipe API in %s environment", config.GetEnvironment())

	// Initialize database
	connector := database.NewConfigConnector(cfg)
	if cfg.EagerConnect {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, err := connector.DB(ctx)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
	}

	// Optional Redis for rate limiting
	var redisClient *redis.Client
	var createLimiter *middleware.RateLimiter
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Redis unavailable, rate limiting disabled: %v", err)
		} else {
			createLimiter = middleware.NewRecipeCreationRateLimiter(redisClient, cfg.CreateRateLimit)
		}
	}

	// Optional S3 image uploads
	var imageService service.IImageService
	if cfg.UploadsEnabled() {
		s3Config, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Printf("Warning: S3 unavailable, image uploads disabled: %v", err)
		} else {
			imageService = service.NewImageService(s3Config)
		}
	}

	// Initialize handlers
	recipeHandler := api.NewRecipeHandler(service.NewRecipeService(connector), cfg.EmptyListNotFound)
	imageHandler := api.NewImageHandler(imageService)
	healthHandler := api.NewHealthHandler(connector, redisClient)

	engine, err := router.SetupRouter(router.Options{
		Prefix:         cfg.APIPrefix,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: cfg.TrustedProxies,
		CreateLimiter:  createLimiter,
	}, recipeHandler, imageHandler, healthHandler)
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	srv := server.New(cfg.Addr(), engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := connector.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
	log.Println("Server stopped")
}
