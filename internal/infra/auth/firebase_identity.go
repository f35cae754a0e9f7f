// Package auth adapts the hosted Firebase identity platform to the IdentityProvider port.
package auth

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Error messages returned by the identity toolkit REST API.
const (
	toolkitEmailNotFound      = "EMAIL_NOT_FOUND"
	toolkitInvalidPassword    = "INVALID_PASSWORD"
	toolkitInvalidLogin       = "INVALID_LOGIN_CREDENTIALS"
	toolkitTooManyAttempts    = "TOO_MANY_ATTEMPTS_TRY_LATER"
	toolkitUserDisabled       = "USER_DISABLED"
	toolkitEmailExists        = "EMAIL_EXISTS"
	toolkitInvalidIDPResponse = "INVALID_IDP_RESPONSE"
)

// Params holds dependencies for the identity provider, injected by Fx
type Params struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// firebaseIdentity uses the Admin SDK for account management and token
// verification, and the identity toolkit REST API for end-user sign-in.
type firebaseIdentity struct {
	client      *auth.Client
	toolkit     *identitytoolkit.Service
	requestURI  string
	continueURL string
	logger      *slog.Logger
}

// NewFirebaseIdentityProvider creates the IdentityProvider backed by Firebase Authentication
func NewFirebaseIdentityProvider(params Params) (service.IdentityProvider, error) {
	if params.FirebaseApp == nil {
		return nil, errors.New("firebase must be configured for the identity provider")
	}

	client, err := params.FirebaseApp.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Auth client")
	}

	identityCfg := params.Config.Identity
	if identityCfg == nil {
		identityCfg = &config.IdentityConfig{}
	}
	if identityCfg.APIKey == "" {
		params.Logger.Warn("[FirebaseIdentity] identity.apiKey is empty, password sign-in will fail")
	}

	toolkit, err := identitytoolkit.NewService(params.Ctx, option.WithAPIKey(identityCfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &firebaseIdentity{
		client:      client,
		toolkit:     toolkit,
		requestURI:  identityCfg.FederatedRequestURI,
		continueURL: identityCfg.ContinueURL,
		logger:      params.Logger,
	}, nil
}

func (p *firebaseIdentity) CreateIdentity(ctx context.Context, email, password, displayName string) (*entity.Identity, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return nil, translateAuthError(err, "failed to create identity")
	}

	return toIdentity(record), nil
}

func (p *firebaseIdentity) SignInWithPassword(ctx context.Context, email, password string) (*entity.ProviderSignIn, error) {
	resp, err := p.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, translateToolkitError(err, "password sign-in failed")
	}

	// The REST response does not carry the verification flag.
	identity, err := p.GetIdentity(ctx, resp.LocalId)
	if err != nil {
		return nil, err
	}

	return &entity.ProviderSignIn{
		Identity:     *identity,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    time.Duration(resp.ExpiresIn) * time.Second,
	}, nil
}

func (p *firebaseIdentity) SignInWithIDP(ctx context.Context, providerID, credential string) (*entity.ProviderSignIn, error) {
	postBody := url.Values{
		"id_token":   {credential},
		"providerId": {providerID},
	}

	resp, err := p.toolkit.Relyingparty.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          postBody.Encode(),
		RequestUri:        p.requestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, translateToolkitError(err, "federated sign-in failed")
	}

	return &entity.ProviderSignIn{
		Identity: entity.Identity{
			UID:           resp.LocalId,
			Email:         resp.Email,
			DisplayName:   resp.DisplayName,
			EmailVerified: resp.EmailVerified,
		},
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    time.Duration(resp.ExpiresIn) * time.Second,
		IsNewUser:    resp.IsNewUser,
	}, nil
}

func (p *firebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	// Checking revocation makes SignOut effective for tokens already issued.
	token, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		if auth.IsUserDisabled(err) {
			return nil, errors.Wrap(service.ErrIdentityDisabled, err.Error())
		}

		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	identity := &entity.Identity{UID: token.UID}
	identity.Email, _ = token.Claims["email"].(string)
	identity.DisplayName, _ = token.Claims["name"].(string)
	identity.EmailVerified, _ = token.Claims["email_verified"].(bool)

	return identity, nil
}

func (p *firebaseIdentity) GetIdentity(ctx context.Context, uid string) (*entity.Identity, error) {
	record, err := p.client.GetUser(ctx, uid)
	if err != nil {
		return nil, translateAuthError(err, "failed to get identity")
	}

	return toIdentity(record), nil
}

func (p *firebaseIdentity) RevokeSessions(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return translateAuthError(err, "failed to revoke sessions")
	}

	return nil
}

func (p *firebaseIdentity) PasswordResetLink(ctx context.Context, email string) (string, error) {
	var (
		link string
		err  error
	)
	if settings := p.actionCodeSettings(); settings != nil {
		link, err = p.client.PasswordResetLinkWithSettings(ctx, email, settings)
	} else {
		link, err = p.client.PasswordResetLink(ctx, email)
	}
	if err != nil {
		return "", translateAuthError(err, "failed to generate password reset link")
	}

	return link, nil
}

func (p *firebaseIdentity) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	var (
		link string
		err  error
	)
	if settings := p.actionCodeSettings(); settings != nil {
		link, err = p.client.EmailVerificationLinkWithSettings(ctx, email, settings)
	} else {
		link, err = p.client.EmailVerificationLink(ctx, email)
	}
	if err != nil {
		return "", translateAuthError(err, "failed to generate email verification link")
	}

	return link, nil
}

func (p *firebaseIdentity) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	if _, err := p.client.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Disabled(disabled)); err != nil {
		return translateAuthError(err, "failed to update identity")
	}

	return nil
}

func (p *firebaseIdentity) DeleteIdentity(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return translateAuthError(err, "failed to delete identity")
	}

	return nil
}

func (p *firebaseIdentity) actionCodeSettings() *auth.ActionCodeSettings {
	if p.continueURL == "" {
		return nil
	}

	return &auth.ActionCodeSettings{URL: p.continueURL}
}

func toIdentity(record *auth.UserRecord) *entity.Identity {
	identity := &entity.Identity{
		EmailVerified: record.EmailVerified,
		Disabled:      record.Disabled,
	}
	if record.UserInfo != nil {
		identity.UID = record.UID
		identity.Email = record.Email
		identity.DisplayName = record.DisplayName
	}

	return identity
}

func translateAuthError(err error, message string) error {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return errors.Wrap(service.ErrEmailExists, message)
	case auth.IsUserNotFound(err), auth.IsEmailNotFound(err):
		return errors.Wrap(service.ErrIdentityNotFound, message)
	default:
		return errors.Wrap(err, message)
	}
}

// translateToolkitError maps identity toolkit REST errors. Messages look like
// "TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled".
func translateToolkitError(err error, message string) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return errors.Wrap(err, message)
	}

	code := apiErr.Message
	if i := strings.IndexAny(code, " :"); i >= 0 {
		code = code[:i]
	}

	switch code {
	case toolkitEmailNotFound, toolkitInvalidPassword, toolkitInvalidLogin, toolkitInvalidIDPResponse:
		return errors.Wrap(service.ErrInvalidCredentials, message)
	case toolkitTooManyAttempts:
		return errors.Wrap(service.ErrTooManyAttempts, message)
	case toolkitUserDisabled:
		return errors.Wrap(service.ErrIdentityDisabled, message)
	case toolkitEmailExists:
		return errors.Wrap(service.ErrEmailExists, message)
	default:
		return errors.Wrapf(err, "%s: %s", message, apiErr.Message)
	}
}
