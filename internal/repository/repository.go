package repository

import (
	"context"
	"database/sql"
	"errors"

	"recipeshare/internal/models"
)

// Sentinel errors surfaced by the storage layer. Callers match with errors.Is.
var (
	// ErrDuplicateUsername is returned when the requested username is
	// already held by another user (caught by the in-transaction pre-check).
	ErrDuplicateUsername = errors.New("username already in use")
	// ErrConflict is returned when the UNIQUE constraint fires at insert
	// time, i.e. a concurrent signup won the race between our pre-check
	// and our insert.
	ErrConflict = errors.New("storage conflict")
)

type Users interface {
	Create(ctx context.Context, u *models.User) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type Recipes interface {
	Create(ctx context.Context, r *models.Recipe) (int, error)
	List(ctx context.Context) ([]models.Recipe, error)
	ListByUser(ctx context.Context, userID int) ([]models.Recipe, error)
}

type Repository struct {
	Users   Users
	Recipes Recipes
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:   NewUserRepository(db),
		Recipes: NewRecipeRepository(db),
	}
}
