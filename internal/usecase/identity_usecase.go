package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"display_name" validate:"required"`
	Phone       string `json:"phone"`
}

// SignInInput defines the data required to sign in with a password.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FederatedSignInInput defines a sign-in with a third-party credential.
type FederatedSignInInput struct {
	ProviderID string `json:"provider_id" validate:"required"`
	IDToken    string `json:"id_token" validate:"required"`
}

// IdentityUsecase defines account registration and authentication.
type IdentityUsecase interface {
	// Register creates the account and its customer profile, then sends a verification email.
	Register(ctx context.Context, input *RegisterInput) (*entity.UserProfile, error)

	// SignIn authenticates with email and password. Unverified emails are refused.
	SignIn(ctx context.Context, input *SignInInput) (*entity.AuthSession, error)

	// SignInWithProvider authenticates with a federated credential, creating the profile on first sign-in.
	SignInWithProvider(ctx context.Context, input *FederatedSignInInput) (*entity.AuthSession, error)

	// SignOut revokes the account's sessions.
	SignOut(ctx context.Context, userID string) error

	// SendPasswordReset emails a reset link. Unknown addresses are not reported.
	SendPasswordReset(ctx context.Context, email string) error

	// ResendVerification emails a new verification link.
	ResendVerification(ctx context.Context, email string) error

	// Authenticate verifies an ID token and loads the caller's profile.
	Authenticate(ctx context.Context, idToken string) (*entity.UserProfile, error)
}
