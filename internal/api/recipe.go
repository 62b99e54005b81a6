package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// RecipeHandler serves the recipe resource
type RecipeHandler struct {
	recipeService     service.IRecipeService
	emptyListNotFound bool
}

// NewRecipeHandler creates a RecipeHandler. When emptyListNotFound is set an
// empty listing of all recipes answers 404 instead of an empty array.
func NewRecipeHandler(recipeService service.IRecipeService, emptyListNotFound bool) *RecipeHandler {
	return &RecipeHandler{
		recipeService:     recipeService,
		emptyListNotFound: emptyListNotFound,
	}
}

// CreateRecipe handles POST /recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "create recipe", err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// ListRecipes handles GET /recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, "list recipes", err)
		return
	}

	if len(recipes) == 0 {
		if h.emptyListNotFound {
			c.JSON(http.StatusNotFound, types.MessageResponse{Message: "No recipes found"})
			return
		}
		recipes = []*model.Recipe{}
	}

	c.JSON(http.StatusOK, recipes)
}

// GetRecipeByTitle handles GET /recipes/title/:title
func (h *RecipeHandler) GetRecipeByTitle(c *gin.Context) {
	recipe, err := h.recipeService.GetRecipeByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		respondError(c, "get recipe by title", err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// ListRecipesByAuthor handles GET /recipes/author/:author
func (h *RecipeHandler) ListRecipesByAuthor(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipesByAuthor(c.Request.Context(), c.Param("author"))
	if err != nil {
		respondError(c, "list recipes by author", err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// ListRecipesByDifficulty handles GET /recipes/difficulty/:difficulty
func (h *RecipeHandler) ListRecipesByDifficulty(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipesByDifficulty(c.Request.Context(), c.Param("difficulty"))
	if err != nil {
		respondError(c, "list recipes by difficulty", err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// UpdateDifficulty handles PUT /recipes/:id/difficulty
func (h *RecipeHandler) UpdateDifficulty(c *gin.Context) {
	var req types.UpdateDifficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	recipe, err := h.recipeService.UpdateDifficulty(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, "update recipe difficulty", err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// UpdateTimesByTitle handles PUT /recipes/title/:title/time
func (h *RecipeHandler) UpdateTimesByTitle(c *gin.Context) {
	var req types.UpdateTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	recipe, err := h.recipeService.UpdateTimesByTitle(c.Request.Context(), c.Param("title"), &req)
	if err != nil {
		respondError(c, "update recipe times", err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.recipeService.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "delete recipe", err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Recipe deleted successfully"})
}
