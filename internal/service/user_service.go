package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"recipeshare/internal/models"
	"recipeshare/internal/repository"
)

const minPasswordLen = 6

// Same shape the original platform accepted: local@domain.tld, no spaces.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService is the user directory backed by a user store, a password
// hasher and a token manager.
type UserService struct {
	users  repository.Users
	hasher PasswordHasher
	tokens *TokenManager
}

var _ Users = (*UserService)(nil)

func NewUserService(users repository.Users, hasher PasswordHasher, tokens *TokenManager) *UserService {
	return &UserService{users: users, hasher: hasher, tokens: tokens}
}

// Register validates input, hashes the password and stores the new user.
// The returned view never contains the hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (models.PublicUser, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return models.PublicUser{}, validationErr("All fields are required")
	}
	if !emailRe.MatchString(in.Email) {
		return models.PublicUser{}, validationErr("Invalid email format")
	}
	if len(in.Password) < minPasswordLen {
		return models.PublicUser{}, validationErr("Password must be at least 6 characters")
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return models.PublicUser{}, mapUserStoreErr(err)
	}
	return created.Public(), nil
}

// Login checks credentials and issues a token carrying the user id. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, validationErr("Username and password are required")
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil || !s.hasher.Verify(password, u.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	return LoginResult{Token: token, User: u.Public()}, nil
}

func (s *UserService) Profile(ctx context.Context, userID int) (models.PublicUser, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("lookup user %d: %w", userID, err)
	}
	if u == nil {
		return models.PublicUser{}, ErrNotFound
	}
	return u.Public(), nil
}

// UpdateProfile changes username and/or email; nil or empty fields are
// no-ops. Uniqueness is re-checked by the store.
func (s *UserService) UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) (models.PublicUser, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("lookup user %d: %w", userID, err)
	}
	if u == nil {
		return models.PublicUser{}, ErrNotFound
	}

	if upd.Email != nil && *upd.Email != "" && !emailRe.MatchString(*upd.Email) {
		return models.PublicUser{}, validationErr("Invalid email format")
	}

	changed := false
	if upd.Username != nil && *upd.Username != "" && *upd.Username != u.Username {
		u.Username = *upd.Username
		changed = true
	}
	if upd.Email != nil && *upd.Email != "" && *upd.Email != u.Email {
		u.Email = *upd.Email
		changed = true
	}

	if changed {
		if err := s.users.Update(ctx, *u); err != nil {
			return models.PublicUser{}, mapUserStoreErr(err)
		}
	}
	return u.Public(), nil
}

func (s *UserService) List(ctx context.Context) ([]models.PublicUser, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]models.PublicUser, 0, len(all))
	for _, u := range all {
		out = append(out, u.Public())
	}
	return out, nil
}

// ParseToken delegates to the token manager; the auth gate calls this.
func (s *UserService) ParseToken(accessToken string) (int, error) {
	return s.tokens.Parse(accessToken)
}

func mapUserStoreErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrUsernameTaken), errors.Is(err, repository.ErrEmailTaken):
		return ErrConflict
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	default:
		return err
	}
}
