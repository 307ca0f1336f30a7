package service

import (
	"context"

	"recipeshare/internal/models"
	"recipeshare/internal/repository"
)

// Authorization owns credentials: signup with hashing, login verification,
// and session-to-user resolution.
type Authorization interface {
	SignUp(ctx context.Context, in SignUpParams) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// Recipes owns the recipe catalog.
type Recipes interface {
	Create(ctx context.Context, in CreateRecipeParams) (*models.Recipe, error)
	List(ctx context.Context) ([]models.Recipe, error)
	ListByUser(ctx context.Context, userID int) ([]models.Recipe, error)
}

// SignUpParams is the validated input for account creation. Password is the
// raw value; it is hashed inside SignUp and discarded.
type SignUpParams struct {
	Username string
	Password string
	ImageURL string
	Bio      string
}

type CreateRecipeParams struct {
	UserID            int
	Title             string
	Instructions      string
	MinutesToComplete int
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Recipes
}

func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Recipes:       NewRecipeService(repos.Recipes),
	}
}
