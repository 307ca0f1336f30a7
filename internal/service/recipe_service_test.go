package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"recipeshare/internal/models"
)

type mockRecipeRepo struct {
	CreateFn     func(r *models.Recipe) (int, error)
	ListFn       func() ([]models.Recipe, error)
	ListByUserFn func(userID int) ([]models.Recipe, error)

	createCalls []models.Recipe
}

func (m *mockRecipeRepo) Create(_ context.Context, r *models.Recipe) (int, error) {
	m.createCalls = append(m.createCalls, *r)
	return m.CreateFn(r)
}

func (m *mockRecipeRepo) List(_ context.Context) ([]models.Recipe, error) {
	return m.ListFn()
}

func (m *mockRecipeRepo) ListByUser(_ context.Context, userID int) ([]models.Recipe, error) {
	return m.ListByUserFn(userID)
}

const validInstructions = "Boil water, warm the pot, steep the leaves for four minutes, pour slowly."

func TestRecipeService_Create_Success(t *testing.T) {
	mock := &mockRecipeRepo{
		CreateFn: func(r *models.Recipe) (int, error) { return 3, nil },
	}
	svc := NewRecipeService(mock)

	rec, err := svc.Create(context.Background(), CreateRecipeParams{
		UserID: 7, Title: "Tea", Instructions: validInstructions, MinutesToComplete: 5,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.ID != 3 || rec.UserID != 7 || rec.Title != "Tea" {
		t.Fatalf("unexpected recipe: %+v", rec)
	}
	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
}

func TestRecipeService_Create_InstructionsLength(t *testing.T) {
	tests := []struct {
		name         string
		instructions string
		wantShort    bool
	}{
		{name: "empty", instructions: "", wantShort: true},
		{name: "49 characters", instructions: strings.Repeat("a", 49), wantShort: true},
		{name: "exactly 50 characters", instructions: strings.Repeat("a", 50), wantShort: false},
		// 50 multibyte runes are more than 50 bytes; the limit counts characters.
		{name: "50 multibyte runes", instructions: strings.Repeat("ä", 50), wantShort: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockRecipeRepo{
				CreateFn: func(r *models.Recipe) (int, error) { return 1, nil },
			}
			svc := NewRecipeService(mock)

			_, err := svc.Create(context.Background(), CreateRecipeParams{
				UserID: 7, Title: "Tea", Instructions: tt.instructions,
			})
			if tt.wantShort {
				if !errors.Is(err, ErrInstructionsTooShort) {
					t.Fatalf("expected ErrInstructionsTooShort, got %v", err)
				}
				if len(mock.createCalls) != 0 {
					t.Fatalf("repo must not be called for short instructions")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRecipeService_Create_EmptyTitle(t *testing.T) {
	mock := &mockRecipeRepo{
		CreateFn: func(r *models.Recipe) (int, error) {
			t.Fatal("Create should not be called for empty title")
			return 0, nil
		},
	}
	svc := NewRecipeService(mock)

	_, err := svc.Create(context.Background(), CreateRecipeParams{
		UserID: 7, Title: "", Instructions: validInstructions,
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["title"]; !ok {
		t.Fatalf("expected title field in validation error, got %v", ve.Fields)
	}
}

func TestRecipeService_Create_RepoErrorPropagates(t *testing.T) {
	mock := &mockRecipeRepo{
		CreateFn: func(r *models.Recipe) (int, error) {
			return 0, errors.New("FOREIGN KEY constraint failed")
		},
	}
	svc := NewRecipeService(mock)

	_, err := svc.Create(context.Background(), CreateRecipeParams{
		UserID: 999, Title: "Tea", Instructions: validInstructions,
	})
	if err == nil || !strings.Contains(err.Error(), "FOREIGN KEY") {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}

func TestRecipeService_List(t *testing.T) {
	want := []models.Recipe{{ID: 1, Title: "Tea", UserID: 7}}
	mock := &mockRecipeRepo{
		ListFn: func() ([]models.Recipe, error) { return want, nil },
	}
	svc := NewRecipeService(mock)

	got, err := svc.List(context.Background())
	if err != nil || len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected result: %+v, %v", got, err)
	}
}
