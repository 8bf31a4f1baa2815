package service

import (
	"context"
	"errors"

	"recipeshare/internal/logger"
)

// SeedDemo loads the demo dataset: two users and a recipe for each. Safe to
// call on a store that already holds the data (conflicts are skipped).
func SeedDemo(ctx context.Context, svc *Service, log *logger.Logger) error {
	seedUsers := []struct {
		reg    RegisterInput
		recipe RecipeInput
	}{
		{
			reg: RegisterInput{Username: "john_doe", Email: "john@example.com", Password: "password123"},
			recipe: RecipeInput{
				Title:        "Spaghetti Carbonara",
				Description:  "Classic Italian pasta with creamy sauce",
				Ingredients:  []string{"pasta", "eggs", "bacon", "parmesan", "black pepper"},
				Instructions: "Cook pasta, fry bacon, mix with eggs and cheese",
			},
		},
		{
			reg: RegisterInput{Username: "jane_smith", Email: "jane@example.com", Password: "password456"},
			recipe: RecipeInput{
				Title:        "Chocolate Cake",
				Description:  "Decadent chocolate dessert",
				Ingredients:  []string{"flour", "chocolate", "eggs", "sugar", "butter"},
				Instructions: "Mix ingredients, bake at 350F for 30 minutes",
			},
		},
	}

	for _, s := range seedUsers {
		u, err := svc.Users.Register(ctx, s.reg)
		if err != nil {
			if errors.Is(err, ErrConflict) {
				if log != nil {
					log.Debugw("seed_user_exists", "username", s.reg.Username)
				}
				continue
			}
			return err
		}
		if _, err := svc.Recipes.Create(ctx, s.recipe, u.ID); err != nil {
			return err
		}
	}
	return nil
}
