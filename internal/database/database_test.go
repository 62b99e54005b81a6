package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-api/backend/config"
	"github.com/pageza/recipe-api/backend/internal/model"
)

func sampleRecipe() *model.Recipe {
	return &model.Recipe{
		Title:        "Pancakes",
		Author:       "A",
		Difficulty:   model.DifficultyEasy,
		PrepTime:     5,
		CookTime:     10,
		Ingredients:  model.StringArray{"flour", "egg"},
		Instructions: model.StringArray{"mix", "cook"},
		ImageURL:     "http://x/img.png",
	}
}

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "recipes.db"),
	}

	db, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	recipe := sampleRecipe()
	require.NoError(t, db.Create(recipe).Error)

	var got model.Recipe
	require.NoError(t, db.First(&got, "id = ?", recipe.ID).Error)
	assert.Equal(t, recipe.Ingredients, got.Ingredients)
	assert.Equal(t, recipe.Instructions, got.Instructions)
	assert.Equal(t, model.DifficultyEasy, got.Difficulty)

	assert.NoError(t, HealthCheck(context.Background(), db))
	assert.NoError(t, Migrate(db), "migrating twice must be harmless")
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{DBDriver: "mongodb"})
	assert.Error(t, err)
}
