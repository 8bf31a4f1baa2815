package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"recipeshare/internal/models"
)

// Sentinel errors shared by all backends. Services translate these into
// the API error taxonomy.
var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already in use")
	ErrEmailTaken    = errors.New("email already in use")
)

type Users interface {
	// Create assigns the next id, enforces username/email uniqueness and
	// returns the stored record.
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	// GetByUsername returns (nil, nil) when no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Update replaces username/email of an existing record, re-checking
	// uniqueness against other users.
	Update(ctx context.Context, u models.User) error
	List(ctx context.Context) ([]models.User, error)
}

type Recipes interface {
	Create(ctx context.Context, r models.Recipe) (models.Recipe, error)
	// GetByID returns (nil, nil) when no such recipe exists.
	GetByID(ctx context.Context, id int) (*models.Recipe, error)
	List(ctx context.Context) ([]models.Recipe, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Recipe, error)
	Update(ctx context.Context, r models.Recipe) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]models.Recipe, error)
	Count(ctx context.Context) (int, error)
}

type Events interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	Users   Users
	Recipes Recipes
	Events  Events
}

// NewMemory builds the default in-process backend. Each call owns its own
// state and id counters, so tests can construct isolated instances.
func NewMemory() *Repository {
	return &Repository{
		Users:   NewUserMemory(),
		Recipes: NewRecipeMemory(),
		Events:  NewEventMemory(),
	}
}

// NewSQLite builds the sqlite-backed repository over an initialized handle.
func NewSQLite(db *sql.DB) *Repository {
	return &Repository{
		Users:   NewUserSQLite(db),
		Recipes: NewRecipeSQLite(db),
		Events:  NewEventSQLite(db),
	}
}

// recipeMatches reports whether q is a case-insensitive substring of the
// title or of any single ingredient. Shared by both backends so search
// semantics cannot drift between them.
func recipeMatches(r models.Recipe, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}
