package service

import (
	"context"
	"unicode/utf8"

	"recipeshare/internal/models"
	"recipeshare/internal/repository"
)

const minInstructionsLen = 50

// RecipeService owns catalog reads and validated creation.
type RecipeService struct {
	recipes repository.Recipes
}

func NewRecipeService(recipes repository.Recipes) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// Create validates the recipe and persists it bound to in.UserID.
// Instructions are measured in characters, not bytes.
func (s *RecipeService) Create(ctx context.Context, in CreateRecipeParams) (*models.Recipe, error) {
	if len(in.Title) == 0 {
		return nil, newValidationError("title", "Title must not be empty.")
	}
	if utf8.RuneCountInString(in.Instructions) < minInstructionsLen {
		return nil, ErrInstructionsTooShort
	}

	rec := &models.Recipe{
		Title:             in.Title,
		Instructions:      in.Instructions,
		MinutesToComplete: in.MinutesToComplete,
		UserID:            in.UserID,
	}
	id, err := s.recipes.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return rec, nil
}

// List returns every recipe in the catalog, owners included.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.List(ctx)
}

// ListByUser returns one user's recipes, used to fill the user body.
func (s *RecipeService) ListByUser(ctx context.Context, userID int) ([]models.Recipe, error) {
	return s.recipes.ListByUser(ctx, userID)
}
