package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/credwise/credwise/internal/profile"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// Demo account credentials. The store is seeded with this account so the
// dashboard works out of the box without registration.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"
	DemoName     = "Demo User"
)

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	store profile.Store
}

// NewPasswordAuthenticator creates a password-based authenticator backed
// by the given store.
func NewPasswordAuthenticator(store profile.Store) *PasswordAuthenticator {
	return &PasswordAuthenticator{store: store}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new user account with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, name, email, credential string) (*profile.User, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := profile.NewUser(name, email, string(hashed))
	if err := a.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, profile.ErrEmailExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies the email and password, returning the user if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*profile.User, error) {
	user, err := a.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// SeedDemoUser registers the demo account, ignoring the duplicate error
// if it already exists.
func (a *PasswordAuthenticator) SeedDemoUser(ctx context.Context) error {
	_, err := a.Register(ctx, DemoName, DemoEmail, DemoPassword)
	if errors.Is(err, profile.ErrEmailExists) {
		return nil
	}
	return err
}
