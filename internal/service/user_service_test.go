package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"recipeshare/internal/repository"
)

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	repos := repository.NewMemory()
	return NewUserService(repos.Users, NewPasswordHasher(4), NewTokenManager("test-secret", time.Hour))
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(t)

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 || user.Username != "alice" || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	// The sanitized view must never leak credential material.
	body, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(body)), "password") {
		t.Fatalf("sanitized user leaks password data: %s", body)
	}

	result, err := svc.Login(ctx, "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.User.ID != user.ID {
		t.Fatalf("login returned user %d, registered %d", result.User.ID, user.ID)
	}
	id, err := svc.ParseToken(result.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if id != user.ID {
		t.Fatalf("token verifies to user %d, want %d", id, user.ID)
	}
}

func TestUserService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      RegisterInput
		wantMsg string
	}{
		{
			name:    "missing username",
			in:      RegisterInput{Email: "a@b.co", Password: "secret1"},
			wantMsg: "All fields are required",
		},
		{
			name:    "missing email",
			in:      RegisterInput{Username: "a", Password: "secret1"},
			wantMsg: "All fields are required",
		},
		{
			name:    "missing password",
			in:      RegisterInput{Username: "a", Email: "a@b.co"},
			wantMsg: "All fields are required",
		},
		{
			name:    "bad email",
			in:      RegisterInput{Username: "a", Email: "not-an-email", Password: "secret1"},
			wantMsg: "Invalid email format",
		},
		{
			name:    "email missing tld",
			in:      RegisterInput{Username: "a", Email: "a@b", Password: "secret1"},
			wantMsg: "Invalid email format",
		},
		{
			name:    "short password",
			in:      RegisterInput{Username: "a", Email: "a@b.co", Password: "12345"},
			wantMsg: "Password must be at least 6 characters",
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestUserService(t)
			_, err := svc.Register(ctx, tt.in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Message != tt.wantMsg {
				t.Fatalf("message: got %q, want %q", vErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestUserService_RegisterConflicts(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(t)

	if _, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Same username, different email.
	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "other@example.com", Password: "secret1"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate username: expected ErrConflict, got %v", err)
	}

	// Same email, different username.
	_, err = svc.Register(ctx, RegisterInput{Username: "bob", Email: "alice@example.com", Password: "secret1"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email: expected ErrConflict, got %v", err)
	}
}

func TestUserService_LoginEnumerationResistance(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(t)

	if _, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, errWrongPw := svc.Login(ctx, "alice", "wrongpw")
	_, errNoUser := svc.Login(ctx, "nonexistent", "anything")

	if errWrongPw == nil || errNoUser == nil {
		t.Fatal("expected both logins to fail")
	}
	if errWrongPw.Error() != errNoUser.Error() {
		t.Fatalf("login errors must be identical: %q vs %q", errWrongPw, errNoUser)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", errWrongPw)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(t)

	alice, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Username: "bob", Email: "bob@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Partial update: username only, email untouched.
	newName := "alice_cooks"
	updated, err := svc.UpdateProfile(ctx, alice.ID, ProfileUpdate{Username: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Username != "alice_cooks" {
		t.Fatalf("username not updated: %+v", updated)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("omitted email must be a no-op, got %q", updated.Email)
	}

	// Malformed email is rejected.
	badEmail := "nope"
	if _, err := svc.UpdateProfile(ctx, alice.ID, ProfileUpdate{Email: &badEmail}); err == nil {
		t.Fatal("expected validation error for malformed email")
	}

	// Colliding with another user's username is a conflict.
	taken := "bob"
	_, err = svc.UpdateProfile(ctx, alice.ID, ProfileUpdate{Username: &taken})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Unknown user id.
	_, err = svc.UpdateProfile(ctx, 9999, ProfileUpdate{Username: &newName})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_ProfileAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(t)

	alice, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.Profile(ctx, alice.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if got != alice {
		t.Fatalf("profile mismatch: got %+v, want %+v", got, alice)
	}

	if _, err := svc.Profile(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	users, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 || users[0].Username != "alice" {
		t.Fatalf("unexpected list: %+v", users)
	}
}
