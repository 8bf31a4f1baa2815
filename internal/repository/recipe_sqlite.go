package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"recipeshare/internal/models"
)

type RecipeSQLite struct {
	db *sql.DB
}

var _ Recipes = (*RecipeSQLite)(nil)

func NewRecipeSQLite(db *sql.DB) *RecipeSQLite {
	return &RecipeSQLite{db: db}
}

const (
	insertRecipeSQL = `INSERT INTO recipes (title, description, ingredients, instructions, created_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectRecipeSQL = `SELECT id, title, description, ingredients, instructions, created_by, created_at, updated_at FROM recipes`
	updateRecipeSQL = `UPDATE recipes SET title = ?, description = ?, ingredients = ?, instructions = ?, updated_at = ? WHERE id = ?`
	deleteRecipeSQL = `DELETE FROM recipes WHERE id = ?`
	countRecipesSQL = `SELECT COUNT(*) FROM recipes`
)

func (r *RecipeSQLite) Create(ctx context.Context, rec models.Recipe) (models.Recipe, error) {
	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("marshal ingredients: %w", err)
	}

	res, err := r.db.ExecContext(ctx, insertRecipeSQL,
		rec.Title, rec.Description, string(ingredients), rec.Instructions,
		rec.CreatedBy, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("insert recipe %q: %w", rec.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get last insert id for recipe %q: %w", rec.Title, err)
	}
	rec.ID = int(lastID)
	return rec, nil
}

func (r *RecipeSQLite) GetByID(ctx context.Context, id int) (*models.Recipe, error) {
	row := r.db.QueryRowContext(ctx, selectRecipeSQL+` WHERE id = ?`, id)
	rec, err := scanRecipe(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select recipe %d: %w", id, err)
	}
	return &rec, nil
}

func (r *RecipeSQLite) List(ctx context.Context) ([]models.Recipe, error) {
	return r.query(ctx, selectRecipeSQL+` ORDER BY id ASC`)
}

func (r *RecipeSQLite) ListByOwner(ctx context.Context, ownerID int) ([]models.Recipe, error) {
	return r.query(ctx, selectRecipeSQL+` WHERE created_by = ? ORDER BY id ASC`, ownerID)
}

func (r *RecipeSQLite) Update(ctx context.Context, rec models.Recipe) error {
	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}

	res, err := r.db.ExecContext(ctx, updateRecipeSQL,
		rec.Title, rec.Description, string(ingredients), rec.Instructions,
		rec.UpdatedAt, rec.ID)
	if err != nil {
		return fmt.Errorf("update recipe %d: %w", rec.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for recipe %d: %w", rec.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RecipeSQLite) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteRecipeSQL, id)
	if err != nil {
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for recipe %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Search filters in Go rather than with LIKE so that per-ingredient
// substring semantics match the memory backend exactly.
func (r *RecipeSQLite) Search(ctx context.Context, query string) ([]models.Recipe, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Recipe, 0)
	for _, rec := range all {
		if recipeMatches(rec, query) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *RecipeSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countRecipesSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return n, nil
}

func (r *RecipeSQLite) query(ctx context.Context, q string, args ...any) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	out := make([]models.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRecipe(scan func(...any) error) (models.Recipe, error) {
	var (
		rec         models.Recipe
		ingredients string
	)
	if err := scan(&rec.ID, &rec.Title, &rec.Description, &ingredients,
		&rec.Instructions, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return models.Recipe{}, err
	}
	if err := json.Unmarshal([]byte(ingredients), &rec.Ingredients); err != nil {
		return models.Recipe{}, fmt.Errorf("decode ingredients for recipe %d: %w", rec.ID, err)
	}
	return rec, nil
}
