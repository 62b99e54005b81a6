package testhelpers

import (
	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}

// NewCreateRecipeRequest returns a valid create request for title
func NewCreateRecipeRequest(title string) *types.CreateRecipeRequest {
	return &types.CreateRecipeRequest{
		Title:        title,
		Author:       "A",
		Difficulty:   model.DifficultyEasy,
		PrepTime:     Float(5),
		CookTime:     Float(10),
		Ingredients:  []string{"flour", "egg"},
		Instructions: []string{"mix", "cook"},
		ImageURL:     "http://x/img.png",
	}
}

// PancakesPayload is the JSON body used by the end-to-end scenario
func PancakesPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":        "Pancakes",
		"author":       "A",
		"difficulty":   "Easy",
		"prepTime":     5,
		"cookTime":     10,
		"ingredients":  []string{"flour", "egg"},
		"instructions": []string{"mix", "cook"},
		"imageUrl":     "http://x/img.png",
	}
}
