package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/pageza/recipe-api/backend/config"
	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/types"
)

func float(v float64) *float64 { return &v }

var sampleRecipes = []types.CreateRecipeRequest{
	{
		Title:        "Pancakes",
		Author:       "Maria",
		Difficulty:   model.DifficultyEasy,
		PrepTime:     float(10),
		CookTime:     float(15),
		Ingredients:  []string{"200g flour", "2 eggs", "300ml milk", "1 tbsp sugar", "pinch of salt"},
		Instructions: []string{"Whisk everything into a smooth batter", "Rest for 10 minutes", "Fry ladlefuls in a hot buttered pan"},
		ImageURL:     "https://images.example.com/pancakes.jpg",
	},
	{
		Title:        "Shakshuka",
		Author:       "Maria",
		Difficulty:   model.DifficultyIntermediate,
		PrepTime:     float(10),
		CookTime:     float(25),
		Ingredients:  []string{"4 eggs", "1 can tomatoes", "1 onion", "1 red pepper", "1 tsp cumin", "1 tsp paprika"},
		Instructions: []string{"Soften onion and pepper", "Add spices and tomatoes and simmer", "Crack in the eggs and cover until set"},
		ImageURL:     "https://images.example.com/shakshuka.jpg",
	},
	{
		Title:        "Beef Wellington",
		Author:       "Tom",
		Difficulty:   model.DifficultyDifficult,
		PrepTime:     float(60),
		CookTime:     float(45),
		Ingredients:  []string{"800g beef fillet", "500g mushrooms", "8 slices prosciutto", "500g puff pastry", "2 egg yolks"},
		Instructions: []string{"Sear the fillet", "Cook the mushrooms down to a duxelles", "Wrap in prosciutto and pastry", "Glaze and bake until golden"},
		ImageURL:     "https://images.example.com/wellington.jpg",
	},
	{
		Title:        "Tomato Soup",
		Author:       "Tom",
		Difficulty:   model.DifficultyEasy,
		PrepTime:     float(5),
		CookTime:     float(30),
		Ingredients:  []string{"1kg tomatoes", "1 onion", "2 garlic cloves", "500ml stock"},
		Instructions: []string{"Roast tomatoes, onion and garlic", "Blend with the stock", "Season and simmer"},
		ImageURL:     "https://images.example.com/tomato-soup.jpg",
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	connector := database.NewConfigConnector(cfg)
	defer func() {
		if err := connector.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	recipeService := service.NewRecipeService(connector)

	created := 0
	for i := range sampleRecipes {
		req := sampleRecipes[i]

		if _, err := recipeService.GetRecipeByTitle(ctx, req.Title); err == nil {
			log.Printf("Skipping %q, already present", req.Title)
			continue
		} else if !errors.Is(err, service.ErrRecipeNotFound) {
			log.Fatalf("Failed to look up %q: %v", req.Title, err)
		}

		recipe, err := recipeService.CreateRecipe(ctx, &req)
		if err != nil {
			log.Fatalf("Failed to save recipe %q: %v", req.Title, err)
		}
		log.Printf("Successfully created recipe: %s", recipe.Title)
		created++
	}

	log.Printf("Successfully seeded %d recipes", created)
}
