package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// RecipeService handles recipe operations
type RecipeService struct {
	store    database.Provider
	validate *validator.Validate
	now      func() time.Time
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(store database.Provider) *RecipeService {
	return &RecipeService{
		store:    store,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *RecipeService) db(ctx context.Context, op string) (*gorm.DB, error) {
	db, err := s.store.DB(ctx)
	if err != nil {
		return nil, storeError(op, err)
	}
	return db.WithContext(ctx), nil
}

// CreateRecipe validates the request and stores a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*model.Recipe, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, toValidationError(err)
	}

	db, err := s.db(ctx, "create recipe")
	if err != nil {
		return nil, err
	}

	now := s.now()
	recipe := &model.Recipe{
		Title:        req.Title,
		Author:       req.Author,
		Difficulty:   req.Difficulty,
		PrepTime:     *req.PrepTime,
		CookTime:     *req.CookTime,
		Ingredients:  model.StringArray(req.Ingredients),
		Instructions: model.StringArray(req.Instructions),
		ImageURL:     req.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(recipe).Error; err != nil {
		return nil, storeError("create recipe", err)
	}

	log.Printf("[RecipeService] Created recipe %s (%q)", recipe.ID, recipe.Title)
	return recipe, nil
}

// ListRecipes returns every stored recipe in store order
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	db, err := s.db(ctx, "list recipes")
	if err != nil {
		return nil, err
	}

	recipes := []*model.Recipe{}
	if err := db.Find(&recipes).Error; err != nil {
		return nil, storeError("list recipes", err)
	}
	return recipes, nil
}

// GetRecipeByTitle returns the first recipe whose title matches exactly
func (s *RecipeService) GetRecipeByTitle(ctx context.Context, title string) (*model.Recipe, error) {
	db, err := s.db(ctx, "get recipe by title")
	if err != nil {
		return nil, err
	}

	var recipe model.Recipe
	if err := db.Where("title = ?", title).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, storeError("get recipe by title", err)
	}
	return &recipe, nil
}

// ListRecipesByAuthor returns all recipes written by author
func (s *RecipeService) ListRecipesByAuthor(ctx context.Context, author string) ([]*model.Recipe, error) {
	return s.listWhere(ctx, "list recipes by author", "author = ?", author)
}

// ListRecipesByDifficulty returns all recipes of the given difficulty.
// The level is matched case-insensitively against the allowed literals.
func (s *RecipeService) ListRecipesByDifficulty(ctx context.Context, difficulty string) ([]*model.Recipe, error) {
	level, err := model.ParseDifficulty(difficulty)
	if err != nil {
		return nil, &ValidationError{Messages: []string{invalidDifficultyMessage()}}
	}
	return s.listWhere(ctx, "list recipes by difficulty", "difficulty = ?", level)
}

func (s *RecipeService) listWhere(ctx context.Context, op, query string, arg interface{}) ([]*model.Recipe, error) {
	db, err := s.db(ctx, op)
	if err != nil {
		return nil, err
	}

	var recipes []*model.Recipe
	if err := db.Where(query, arg).Find(&recipes).Error; err != nil {
		return nil, storeError(op, err)
	}
	if len(recipes) == 0 {
		return nil, ErrNoRecipesFound
	}
	return recipes, nil
}

// UpdateDifficulty changes only the difficulty of the recipe with the given id
func (s *RecipeService) UpdateDifficulty(ctx context.Context, id string, req *types.UpdateDifficultyRequest) (*model.Recipe, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, toValidationError(err)
	}

	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrRecipeNotFound
	}

	db, err := s.db(ctx, "update recipe difficulty")
	if err != nil {
		return nil, err
	}

	var recipe model.Recipe
	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Recipe{}).Where("id = ?", recipeID).Updates(map[string]interface{}{
			"difficulty": req.Difficulty,
			"updated_at": s.now(),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecipeNotFound
		}
		return tx.First(&recipe, "id = ?", recipeID).Error
	})
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			return nil, err
		}
		return nil, storeError("update recipe difficulty", err)
	}

	log.Printf("[RecipeService] Set difficulty of recipe %s to %s", recipe.ID, recipe.Difficulty)
	return &recipe, nil
}

// UpdateTimesByTitle changes the preparation and cooking times of the first
// recipe matching title. Times left out of the request are kept.
func (s *RecipeService) UpdateTimesByTitle(ctx context.Context, title string, req *types.UpdateTimesRequest) (*model.Recipe, error) {
	db, err := s.db(ctx, "update recipe times")
	if err != nil {
		return nil, err
	}

	var recipe model.Recipe
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("title = ?", title).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		updates := map[string]interface{}{"updated_at": s.now()}
		if req.PrepTime != nil {
			updates["prep_time"] = *req.PrepTime
		}
		if req.CookTime != nil {
			updates["cook_time"] = *req.CookTime
		}
		if err := tx.Model(&model.Recipe{}).Where("id = ?", recipe.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&recipe, "id = ?", recipe.ID).Error
	})
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			return nil, err
		}
		return nil, storeError("update recipe times", err)
	}

	log.Printf("[RecipeService] Updated times of recipe %s", recipe.ID)
	return &recipe, nil
}

// DeleteRecipe removes the recipe with the given id
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return ErrRecipeNotFound
	}

	db, err := s.db(ctx, "delete recipe")
	if err != nil {
		return err
	}

	res := db.Delete(&model.Recipe{}, "id = ?", recipeID)
	if res.Error != nil {
		return storeError("delete recipe", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecipeNotFound
	}

	log.Printf("[RecipeService] Deleted recipe %s", recipeID)
	return nil
}
