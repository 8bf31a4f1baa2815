package service

import (
	"context"
	"time"

	"recipeshare/internal/logger"
	"recipeshare/internal/models"
	"recipeshare/internal/repository"
)

// Users is the user directory: registration, login, profiles and the token
// verification used by the auth gate.
type Users interface {
	Register(ctx context.Context, in RegisterInput) (models.PublicUser, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Profile(ctx context.Context, userID int) (models.PublicUser, error)
	UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) (models.PublicUser, error)
	List(ctx context.Context) ([]models.PublicUser, error)
	ParseToken(accessToken string) (int, error)
}

// Recipes is the catalog: validated CRUD scoped to the owning user, plus
// free-text search.
type Recipes interface {
	Create(ctx context.Context, in RecipeInput, ownerID int) (models.Recipe, error)
	GetAll(ctx context.Context) ([]models.Recipe, error)
	GetByID(ctx context.Context, id int) (models.Recipe, error)
	GetByOwner(ctx context.Context, ownerID int) ([]models.Recipe, error)
	Update(ctx context.Context, id int, upd RecipeUpdate, callerID int) (models.Recipe, error)
	Delete(ctx context.Context, id, callerID int) error
	Search(ctx context.Context, query string) ([]models.Recipe, error)
	Count(ctx context.Context) (int, error)
}

// Activity exposes the append-only catalog event log.
type Activity interface {
	List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error)
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  models.PublicUser
}

// ProfileUpdate carries the mutable user fields; nil means "leave as is".
type ProfileUpdate struct {
	Username *string
	Email    *string
}

type RecipeInput struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions string
}

// RecipeUpdate distinguishes absent fields (nil) from explicitly set ones,
// so a description can be cleared to "" without clearing it on every update.
type RecipeUpdate struct {
	Title        *string
	Description  *string
	Ingredients  []string
	Instructions *string
}

// Config holds the auth knobs that must never be source literals.
type Config struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

type Service struct {
	Users
	Recipes
	Activity
}

func NewService(repos *repository.Repository, cfg Config, log *logger.Logger) *Service {
	hasher := NewPasswordHasher(cfg.BcryptCost)
	tokens := NewTokenManager(cfg.SigningKey, cfg.TokenTTL)
	return &Service{
		Users:    NewUserService(repos.Users, hasher, tokens),
		Recipes:  NewRecipeService(repos.Recipes, repos.Events, log),
		Activity: NewActivityService(repos.Events),
	}
}
