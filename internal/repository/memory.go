package repository

import (
	"context"
	"sync"
	"time"

	"recipeshare/internal/models"
)

// In-memory backends. Gin serves requests on separate goroutines, so every
// operation takes the store mutex: uniqueness checks and id assignment must
// be atomic with the write that follows them.

type UserMemory struct {
	mu     sync.Mutex
	users  []models.User
	nextID int
}

var _ Users = (*UserMemory)(nil)

func NewUserMemory() *UserMemory {
	return &UserMemory{nextID: 1}
}

func (s *UserMemory) Create(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return models.User{}, ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return models.User{}, ErrEmailTaken
		}
	}

	u.ID = s.nextID
	s.nextID++
	s.users = append(s.users, u)
	return u, nil
}

func (s *UserMemory) GetByID(_ context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (s *UserMemory) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (s *UserMemory) Update(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.users {
		if existing.ID == u.ID {
			idx = i
			continue
		}
		if existing.Username == u.Username {
			return ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	s.users[idx] = u
	return nil
}

func (s *UserMemory) List(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

type RecipeMemory struct {
	mu      sync.Mutex
	recipes []models.Recipe
	nextID  int
}

var _ Recipes = (*RecipeMemory)(nil)

func NewRecipeMemory() *RecipeMemory {
	return &RecipeMemory{nextID: 1}
}

func (s *RecipeMemory) Create(_ context.Context, r models.Recipe) (models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// nextID only ever grows, so ids are never reused after a delete.
	r.ID = s.nextID
	s.nextID++
	s.recipes = append(s.recipes, r)
	return r, nil
}

func (s *RecipeMemory) GetByID(_ context.Context, id int) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.recipes {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, nil
}

func (s *RecipeMemory) List(_ context.Context) ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

func (s *RecipeMemory) ListByOwner(_ context.Context, ownerID int) ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Recipe, 0)
	for _, r := range s.recipes {
		if r.CreatedBy == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RecipeMemory) Update(_ context.Context, r models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.recipes {
		if existing.ID == r.ID {
			s.recipes[i] = r
			return nil
		}
	}
	return ErrNotFound
}

func (s *RecipeMemory) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.recipes {
		if existing.ID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *RecipeMemory) Search(_ context.Context, query string) ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Recipe, 0)
	for _, r := range s.recipes {
		if recipeMatches(r, query) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RecipeMemory) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recipes), nil
}

type EventMemory struct {
	mu     sync.Mutex
	events []models.ActivityEvent
}

var _ Events = (*EventMemory)(nil)

func NewEventMemory() *EventMemory {
	return &EventMemory{}
}

func (s *EventMemory) Append(_ context.Context, e models.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *EventMemory) List(_ context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ActivityEvent, 0)
	for _, e := range s.events {
		if !from.IsZero() && e.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
