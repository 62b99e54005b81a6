package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/types"
)

var _ service.IRecipeService = (*MockRecipeService)(nil)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) recipe(args mock.Arguments) (*model.Recipe, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeService) recipes(args mock.Arguments) ([]*model.Recipe, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Recipe), args.Error(1)
}

// CreateRecipe mocks the CreateRecipe method
func (m *MockRecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*model.Recipe, error) {
	return m.recipe(m.Called(ctx, req))
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	return m.recipes(m.Called(ctx))
}

// GetRecipeByTitle mocks the GetRecipeByTitle method
func (m *MockRecipeService) GetRecipeByTitle(ctx context.Context, title string) (*model.Recipe, error) {
	return m.recipe(m.Called(ctx, title))
}

// ListRecipesByAuthor mocks the ListRecipesByAuthor method
func (m *MockRecipeService) ListRecipesByAuthor(ctx context.Context, author string) ([]*model.Recipe, error) {
	return m.recipes(m.Called(ctx, author))
}

// ListRecipesByDifficulty mocks the ListRecipesByDifficulty method
func (m *MockRecipeService) ListRecipesByDifficulty(ctx context.Context, difficulty string) ([]*model.Recipe, error) {
	return m.recipes(m.Called(ctx, difficulty))
}

// UpdateDifficulty mocks the UpdateDifficulty method
func (m *MockRecipeService) UpdateDifficulty(ctx context.Context, id string, req *types.UpdateDifficultyRequest) (*model.Recipe, error) {
	return m.recipe(m.Called(ctx, id, req))
}

// UpdateTimesByTitle mocks the UpdateTimesByTitle method
func (m *MockRecipeService) UpdateTimesByTitle(ctx context.Context, title string, req *types.UpdateTimesRequest) (*model.Recipe, error) {
	return m.recipe(m.Called(ctx, title, req))
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
