package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"recipeshare/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRecipeRepo(t *testing.T) (*RecipeRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewRecipeRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestRecipeRepository_Create(t *testing.T) {
	recipe := func() *models.Recipe {
		return &models.Recipe{
			Title:             "Tea",
			Instructions:      "Boil water, steep the leaves for four minutes, pour slowly.",
			MinutesToComplete: 5,
			UserID:            7,
		}
	}

	tests := []struct {
		name           string
		mockExpect     func(sqlmock.Sqlmock)
		wantID         int
		wantErr        bool
		errContainsStr string
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(regexp.QuoteMeta(insertRecipeSQL)).
					WithArgs("Tea", "Boil water, steep the leaves for four minutes, pour slowly.", 5, 7).
					WillReturnResult(sqlmock.NewResult(3, 1))
				m.ExpectCommit()
			},
			wantID: 3,
		},
		{
			name: "insert error rolls back",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(regexp.QuoteMeta(insertRecipeSQL)).
					WithArgs("Tea", "Boil water, steep the leaves for four minutes, pour slowly.", 5, 7).
					WillReturnError(errors.New("FOREIGN KEY constraint failed"))
				m.ExpectRollback()
			},
			wantErr:        true,
			errContainsStr: "insert recipe",
		},
		{
			name: "last insert id error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(regexp.QuoteMeta(insertRecipeSQL)).
					WithArgs("Tea", "Boil water, steep the leaves for four minutes, pour slowly.", 5, 7).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
				m.ExpectRollback()
			},
			wantErr:        true,
			errContainsStr: "get last insert id",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockRecipeRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			id, err := repo.Create(context.Background(), recipe())

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContainsStr != "" && !contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("unexpected id: want %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestRecipeRepository_List(t *testing.T) {
	repo, mock, cleanup := newMockRecipeRepo(t)
	defer cleanup()

	columns := []string{
		"id", "title", "instructions", "minutes_to_complete", "user_id",
		"owner_id", "username", "image_url", "bio",
	}
	mock.ExpectQuery(regexp.QuoteMeta(selectAllRecipesSQL)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "Tea", "Boil water, steep the leaves for four minutes, pour slowly.", 5, 7, 7, "alice", "img", "bio").
			AddRow(2, "Toast", "Slice the bread thickly, toast both sides and butter while warm.", 3, 8, 8, "bob", "", ""))

	recipes, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(recipes))
	}

	first := recipes[0]
	if first.ID != 1 || first.UserID != 7 {
		t.Fatalf("unexpected recipe: %+v", first)
	}
	if first.Owner == nil || first.Owner.Username != "alice" || first.Owner.ID != 7 {
		t.Fatalf("expected owner alice, got %+v", first.Owner)
	}
}

func TestRecipeRepository_List_Empty(t *testing.T) {
	repo, mock, cleanup := newMockRecipeRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectAllRecipesSQL)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "instructions", "minutes_to_complete", "user_id",
			"owner_id", "username", "image_url", "bio",
		}))

	recipes, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recipes == nil || len(recipes) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", recipes)
	}
}

func TestRecipeRepository_ListByUser(t *testing.T) {
	repo, mock, cleanup := newMockRecipeRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectRecipesByUserSQL)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "instructions", "minutes_to_complete", "user_id"}).
			AddRow(1, "Tea", "Boil water, steep the leaves for four minutes, pour slowly.", 5, 7))

	recipes, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipes) != 1 || recipes[0].UserID != 7 {
		t.Fatalf("unexpected recipes: %+v", recipes)
	}
	if recipes[0].Owner != nil {
		t.Fatalf("per-user listing should not attach owners, got %+v", recipes[0].Owner)
	}
}
