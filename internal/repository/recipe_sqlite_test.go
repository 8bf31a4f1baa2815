package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"recipeshare/internal/models"
)

func newMockRecipeRepo(t *testing.T) (*RecipeSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewRecipeSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

var recipeColumns = []string{"id", "title", "description", "ingredients", "instructions", "created_by", "created_at", "updated_at"}

func TestRecipeSQLite_Create(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, mock, cleanup := newMockRecipeRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertRecipeSQL)).
		WithArgs("Pancakes", "Fluffy", `["flour","milk"]`, "Whisk and fry", 7, now, now).
		WillReturnResult(sqlmock.NewResult(3, 1))

	created, err := repo.Create(context.Background(), models.Recipe{
		Title:        "Pancakes",
		Description:  "Fluffy",
		Ingredients:  []string{"flour", "milk"},
		Instructions: "Whisk and fry",
		CreatedBy:    7,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 3 {
		t.Fatalf("id: got %d, want 3", created.ID)
	}
}

func TestRecipeSQLite_GetByID(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(selectRecipeSQL + ` WHERE id = ?`)

	t.Run("found decodes ingredients", func(t *testing.T) {
		repo, mock, cleanup := newMockRecipeRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows(recipeColumns).
			AddRow(3, "Pancakes", "Fluffy", `["flour","milk"]`, "Whisk and fry", 7, now, now)
		mock.ExpectQuery(query).WithArgs(3).WillReturnRows(rows)

		r, err := repo.GetByID(context.Background(), 3)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if r == nil || len(r.Ingredients) != 2 || r.Ingredients[0] != "flour" {
			t.Fatalf("unexpected recipe: %+v", r)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := newMockRecipeRepo(t)
		defer cleanup()

		mock.ExpectQuery(query).WithArgs(404).WillReturnRows(sqlmock.NewRows(recipeColumns))

		r, err := repo.GetByID(context.Background(), 404)
		if err != nil || r != nil {
			t.Fatalf("expected (nil, nil), got (%+v, %v)", r, err)
		}
	})
}

func TestRecipeSQLite_Delete(t *testing.T) {
	query := regexp.QuoteMeta(deleteRecipeSQL)

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockRecipeRepo(t)
		defer cleanup()

		mock.ExpectExec(query).WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Delete(context.Background(), 3); err != nil {
			t.Fatalf("delete: %v", err)
		}
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock, cleanup := newMockRecipeRepo(t)
		defer cleanup()

		mock.ExpectExec(query).WithArgs(404).WillReturnResult(sqlmock.NewResult(0, 0))

		if err := repo.Delete(context.Background(), 404); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRecipeSQLite_SearchFiltersInGo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, mock, cleanup := newMockRecipeRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows(recipeColumns).
		AddRow(1, "Chocolate Cake", "", `["flour"]`, "bake", 1, now, now).
		AddRow(2, "Cookies", "", `["chocolate chips"]`, "bake", 2, now, now).
		AddRow(3, "Salad", "", `["lettuce"]`, "toss", 1, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(selectRecipeSQL + ` ORDER BY id ASC`)).WillReturnRows(rows)

	results, err := repo.Search(context.Background(), "choc")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 || results[0].ID != 1 || results[1].ID != 2 {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestRecipeSQLite_Count(t *testing.T) {
	repo, mock, cleanup := newMockRecipeRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(countRecipesSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	n, err := repo.Count(context.Background())
	if err != nil || n != 5 {
		t.Fatalf("count: got (%d, %v), want 5", n, err)
	}
}
