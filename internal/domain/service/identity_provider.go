package service

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/pkg/errors"
)

// Errors the identity provider translates its failures into.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrIdentityDisabled   = errors.New("identity disabled")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrInvalidToken       = errors.New("invalid token")
)

// IdentityProvider is the hosted authentication service.
type IdentityProvider interface {
	// CreateIdentity registers an email/password account.
	CreateIdentity(ctx context.Context, email, password, displayName string) (*entity.Identity, error)

	// SignInWithPassword exchanges email and password for a token set.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.ProviderSignIn, error)

	// SignInWithIDP exchanges a third-party credential (e.g. a Google ID token) for a token set.
	SignInWithIDP(ctx context.Context, providerID, credential string) (*entity.ProviderSignIn, error)

	// VerifyIDToken validates a token issued by the provider and returns its subject.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error)

	// GetIdentity loads the account by ID.
	GetIdentity(ctx context.Context, uid string) (*entity.Identity, error)

	// RevokeSessions invalidates every refresh token of the account.
	RevokeSessions(ctx context.Context, uid string) error

	// PasswordResetLink generates the out-of-band link for a password reset.
	PasswordResetLink(ctx context.Context, email string) (string, error)

	// EmailVerificationLink generates the out-of-band link for email verification.
	EmailVerificationLink(ctx context.Context, email string) (string, error)

	// SetDisabled enables or disables sign-in for the account.
	SetDisabled(ctx context.Context, uid string, disabled bool) error

	// DeleteIdentity removes the account.
	DeleteIdentity(ctx context.Context, uid string) error
}
