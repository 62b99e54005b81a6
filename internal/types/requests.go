package types

import "github.com/pageza/recipe-api/backend/internal/model"

// CreateRecipeRequest represents the request body for creating a recipe.
// Numbers are pointers so a missing value can be told apart from zero.
type CreateRecipeRequest struct {
	Title        string           `json:"title" validate:"required"`
	Author       string           `json:"author" validate:"required"`
	Difficulty   model.Difficulty `json:"difficulty" validate:"required,difficulty"`
	PrepTime     *float64         `json:"prepTime" validate:"required"`
	CookTime     *float64         `json:"cookTime" validate:"required"`
	Ingredients  []string         `json:"ingredients" validate:"required,min=1"`
	Instructions []string         `json:"instructions" validate:"required,min=1"`
	ImageURL     string           `json:"imageUrl" validate:"required"`
}

// UpdateDifficultyRequest represents the request body for changing a recipe's difficulty
type UpdateDifficultyRequest struct {
	Difficulty model.Difficulty `json:"difficulty" validate:"required,difficulty"`
}

// UpdateTimesRequest represents the request body for changing preparation and cooking times.
// Omitted fields keep their stored value.
type UpdateTimesRequest struct {
	PrepTime *float64 `json:"prepTime"`
	CookTime *float64 `json:"cookTime"`
}

// MessageResponse is the body of confirmations and errors
type MessageResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ImageUploadResponse is returned after a recipe image was stored
type ImageUploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
