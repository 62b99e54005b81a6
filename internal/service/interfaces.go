package service

import (
	"context"
	"io"

	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*model.Recipe, error)
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	GetRecipeByTitle(ctx context.Context, title string) (*model.Recipe, error)
	ListRecipesByAuthor(ctx context.Context, author string) ([]*model.Recipe, error)
	ListRecipesByDifficulty(ctx context.Context, difficulty string) ([]*model.Recipe, error)
	UpdateDifficulty(ctx context.Context, id string, req *types.UpdateDifficultyRequest) (*model.Recipe, error)
	UpdateTimesByTitle(ctx context.Context, title string, req *types.UpdateTimesRequest) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
}

// IImageService defines the interface for recipe image uploads
type IImageService interface {
	UploadRecipeImage(ctx context.Context, contentType string, size int64, body io.Reader) (string, error)
}

var (
	_ IRecipeService = (*RecipeService)(nil)
	_ IImageService  = (*ImageService)(nil)
)
