package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"recipeshare/internal/logger"
	"recipeshare/internal/models"
	"recipeshare/internal/repository"
)

const maxTitleLen = 100

// RecipeService is the catalog. Every successful mutation appends an
// activity event; append failures are logged, never surfaced.
type RecipeService struct {
	recipes repository.Recipes
	events  repository.Events
	log     *logger.Logger
}

var _ Recipes = (*RecipeService)(nil)

func NewRecipeService(recipes repository.Recipes, events repository.Events, log *logger.Logger) *RecipeService {
	return &RecipeService{recipes: recipes, events: events, log: log}
}

// validateRecipe checks fields in a fixed order so error messages are
// deterministic: title, ingredients, instructions, then title length.
func validateRecipe(title string, ingredients []string, instructions string) error {
	if strings.TrimSpace(title) == "" {
		return validationErr("Title is required")
	}
	if len(ingredients) == 0 {
		return validationErr("At least one ingredient is required")
	}
	if strings.TrimSpace(instructions) == "" {
		return validationErr("Instructions are required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return validationErr("Title must be less than 100 characters")
	}
	return nil
}

func (s *RecipeService) Create(ctx context.Context, in RecipeInput, ownerID int) (models.Recipe, error) {
	if err := validateRecipe(in.Title, in.Ingredients, in.Instructions); err != nil {
		return models.Recipe{}, err
	}

	now := time.Now().UTC()
	created, err := s.recipes.Create(ctx, models.Recipe{
		Title:        in.Title,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		CreatedBy:    ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return models.Recipe{}, fmt.Errorf("store recipe: %w", err)
	}

	s.record(ctx, models.ActivityRecipeCreated, "Recipe created: "+created.Title, created)
	return created, nil
}

func (s *RecipeService) GetAll(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.List(ctx)
}

func (s *RecipeService) GetByID(ctx context.Context, id int) (models.Recipe, error) {
	r, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("lookup recipe %d: %w", id, err)
	}
	if r == nil {
		return models.Recipe{}, ErrNotFound
	}
	return *r, nil
}

func (s *RecipeService) GetByOwner(ctx context.Context, ownerID int) ([]models.Recipe, error) {
	return s.recipes.ListByOwner(ctx, ownerID)
}

// Update merges the provided fields into the stored record, re-validates the
// result and saves it. Only the owner may update; CreatedBy never changes.
func (s *RecipeService) Update(ctx context.Context, id int, upd RecipeUpdate, callerID int) (models.Recipe, error) {
	existing, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("lookup recipe %d: %w", id, err)
	}
	if existing == nil {
		return models.Recipe{}, ErrNotFound
	}
	if existing.CreatedBy != callerID {
		return models.Recipe{}, ErrForbidden
	}

	merged := *existing
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.Description != nil {
		merged.Description = *upd.Description
	}
	if upd.Ingredients != nil {
		merged.Ingredients = upd.Ingredients
	}
	if upd.Instructions != nil {
		merged.Instructions = *upd.Instructions
	}

	if err := validateRecipe(merged.Title, merged.Ingredients, merged.Instructions); err != nil {
		return models.Recipe{}, err
	}

	merged.UpdatedAt = time.Now().UTC()
	if err := s.recipes.Update(ctx, merged); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Recipe{}, ErrNotFound
		}
		return models.Recipe{}, fmt.Errorf("update recipe %d: %w", id, err)
	}

	s.record(ctx, models.ActivityRecipeUpdated, "Recipe updated: "+merged.Title, merged)
	return merged, nil
}

func (s *RecipeService) Delete(ctx context.Context, id, callerID int) error {
	existing, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("lookup recipe %d: %w", id, err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.CreatedBy != callerID {
		return ErrForbidden
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}

	s.record(ctx, models.ActivityRecipeDeleted, "Recipe deleted: "+existing.Title, *existing)
	return nil
}

func (s *RecipeService) Search(ctx context.Context, query string) ([]models.Recipe, error) {
	return s.recipes.Search(ctx, query)
}

func (s *RecipeService) Count(ctx context.Context) (int, error) {
	return s.recipes.Count(ctx)
}

func (s *RecipeService) record(ctx context.Context, typ, description string, r models.Recipe) {
	err := s.events.Append(ctx, models.ActivityEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: description,
		Metadata: map[string]any{
			"recipe_id": r.ID,
			"owner_id":  r.CreatedBy,
		},
	})
	if err != nil && s.log != nil {
		s.log.Warnw("activity_append_failed", "type", typ, "recipe_id", r.ID, "err", err)
	}
}
