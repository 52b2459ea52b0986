// Package auth provides credentials sign-in, failure classification,
// and signed session tokens for the dashboard.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage"
)

// ErrorType discriminates authentication failure classes raised by an
// identity provider.
type ErrorType string

const (
	// TypeCredentialsSignin marks a rejected email/password pair.
	TypeCredentialsSignin ErrorType = "CredentialsSignin"
	// TypeCallbackRoute marks a failure while completing a sign-in flow.
	TypeCallbackRoute ErrorType = "CallbackRouteError"
)

// User-facing messages produced by Authenticate.
const (
	MessageInvalidCredentials = "Invalid credentials."
	MessageUnknownAuthFailure = "Something went wrong."
)

// Error is a typed authentication failure.
type Error struct {
	Type ErrorType
	Err  error
}

// Error renders the failure type and cause.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Type)
	}
	return fmt.Sprintf("%s: %v", e.Type, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Credentials is a raw sign-in payload.
type Credentials struct {
	Email    string
	Password string
}

// IdentityProvider authenticates credentials and returns the signed-in
// user id. Authentication failures are reported as *Error; anything
// else is an infrastructure fault.
type IdentityProvider interface {
	SignIn(ctx context.Context, creds Credentials) (string, error)
}

// minPasswordLength mirrors the sign-in form contract.
const minPasswordLength = 6

// StoreProvider authenticates against the user store with bcrypt
// password hashes.
type StoreProvider struct {
	users storage.UserStore
}

// NewStoreProvider builds a provider backed by the given user store.
func NewStoreProvider(users storage.UserStore) *StoreProvider {
	return &StoreProvider{users: users}
}

// SignIn verifies an email/password pair against the user store.
func (p *StoreProvider) SignIn(ctx context.Context, creds Credentials) (string, error) {
	if p == nil || p.users == nil {
		return "", fmt.Errorf("user store is not configured")
	}

	email := strings.TrimSpace(strings.ToLower(creds.Email))
	if email == "" || len(creds.Password) < minPasswordLength {
		return "", &Error{Type: TypeCredentialsSignin}
	}

	user, found, err := p.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}
	if !found {
		return "", &Error{Type: TypeCredentialsSignin}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return "", &Error{Type: TypeCredentialsSignin, Err: err}
	}
	return user.ID, nil
}

// Authenticate runs one sign-in attempt and classifies failures. It
// returns the user id on success, a user-facing message for recognized
// authentication failures, and propagates everything else unchanged.
func Authenticate(ctx context.Context, provider IdentityProvider, creds Credentials) (userID string, message string, err error) {
	if provider == nil {
		return "", "", fmt.Errorf("identity provider is not configured")
	}

	userID, err = provider.SignIn(ctx, creds)
	if err == nil {
		return userID, "", nil
	}

	var authErr *Error
	if errors.As(err, &authErr) {
		if authErr.Type == TypeCredentialsSignin {
			return "", MessageInvalidCredentials, nil
		}
		return "", MessageUnknownAuthFailure, nil
	}
	return "", "", err
}

// HashPassword produces a bcrypt hash for seeding accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
