package repository

import (
	"context"
	"database/sql"
	"fmt"

	"recipeshare/internal/models"
)

type RecipeRepository struct {
	db *sql.DB
}

func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

var _ Recipes = (*RecipeRepository)(nil)

const (
	insertRecipeSQL = `INSERT INTO recipes (title, instructions, minutes_to_complete, user_id) VALUES (?, ?, ?, ?)`

	// Joined with users so each listed recipe carries its owner without a
	// second round trip. The owner's recipe list is deliberately not loaded.
	selectAllRecipesSQL = `
SELECT r.id, r.title, r.instructions, r.minutes_to_complete, r.user_id,
       u.id, u.username, u.image_url, u.bio
FROM recipes r
JOIN users u ON u.id = r.user_id
ORDER BY r.id`

	selectRecipesByUserSQL = `
SELECT id, title, instructions, minutes_to_complete, user_id
FROM recipes WHERE user_id = ? ORDER BY id`
)

// Create inserts a recipe inside a transaction and returns its ID. A failed
// insert (e.g. a dangling user_id rejected by the FK) rolls back cleanly.
func (r *RecipeRepository) Create(ctx context.Context, rec *models.Recipe) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create recipe tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, insertRecipeSQL,
		rec.Title, rec.Instructions, rec.MinutesToComplete, rec.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert recipe %q: %w", rec.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for recipe %q: %w", rec.Title, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create recipe %q: %w", rec.Title, err)
	}
	return int(lastID), nil
}

// List returns all recipes with their owners attached.
func (r *RecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, selectAllRecipesSQL)
	if err != nil {
		return nil, fmt.Errorf("select recipes: %w", err)
	}
	defer rows.Close()

	out := make([]models.Recipe, 0)
	for rows.Next() {
		var rec models.Recipe
		var owner models.UserRef
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Instructions, &rec.MinutesToComplete, &rec.UserID,
			&owner.ID, &owner.Username, &owner.ImageURL, &owner.Bio,
		); err != nil {
			return nil, fmt.Errorf("scan recipe row: %w", err)
		}
		rec.Owner = &owner
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe rows: %w", err)
	}
	return out, nil
}

// ListByUser returns the recipes owned by one user, owners omitted.
func (r *RecipeRepository) ListByUser(ctx context.Context, userID int) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, selectRecipesByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select recipes for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Recipe, 0)
	for rows.Next() {
		var rec models.Recipe
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Instructions, &rec.MinutesToComplete, &rec.UserID); err != nil {
			return nil, fmt.Errorf("scan recipe row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe rows: %w", err)
	}
	return out, nil
}
