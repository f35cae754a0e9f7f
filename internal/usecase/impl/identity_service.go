package impl

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	serviceName string
	identity    service.IdentityProvider
	userRepo    repository.UserRepository
	mailer      service.Mailer
	sessions    usecase.AdminSessionUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	Config   *config.Config
	Identity service.IdentityProvider
	UserRepo repository.UserRepository
	Mailer   service.Mailer
	Sessions usecase.AdminSessionUsecase
	Logger   *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		serviceName: params.Config.Env.ServiceName,
		identity:    params.Identity,
		userRepo:    params.UserRepo,
		mailer:      params.Mailer,
		sessions:    params.Sessions,
		logger:      params.Logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and its customer profile, then sends a verification email.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.UserProfile, error) {
	ident, err := srv.identity.CreateIdentity(ctx, input.Email, input.Password, input.DisplayName)
	if err != nil {
		return nil, translateIdentityError(err, "failed to create identity")
	}

	profile := srv.newProfile(ident)
	profile.Phone = input.Phone
	if err := srv.userRepo.Create(ctx, profile); err != nil {
		// Roll back the identity so the email can be registered again.
		if delErr := srv.identity.DeleteIdentity(ctx, ident.UID); delErr != nil {
			srv.log(ctx).Error("Failed to roll back identity after profile error",
				slog.String("uid", ident.UID),
				slog.Any("error", delErr),
			)
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", profile.ID))

	// The account exists at this point, a lost email can be requested again.
	if err := srv.sendVerification(ctx, ident.Email, ident.DisplayName); err != nil {
		srv.log(ctx).Warn("Failed to send verification email",
			slog.String("userID", profile.ID),
			slog.Any("error", err),
		)
	}

	return profile, nil
}

// SignIn authenticates with email and password.
func (srv *identityService) SignIn(ctx context.Context, input *usecase.SignInInput) (*entity.AuthSession, error) {
	signIn, err := srv.identity.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, translateIdentityError(err, "password sign-in failed")
	}

	if !signIn.Identity.EmailVerified {
		return nil, errors.Wrap(domainerrors.ErrEmailNotVerified, signIn.Identity.Email)
	}

	profile, _, err := srv.ensureProfile(ctx, &signIn.Identity)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User signed in", slog.String("userID", profile.ID))

	return srv.newSession(signIn, profile, false), nil
}

// SignInWithProvider authenticates with a federated credential.
func (srv *identityService) SignInWithProvider(ctx context.Context, input *usecase.FederatedSignInInput) (*entity.AuthSession, error) {
	signIn, err := srv.identity.SignInWithIDP(ctx, input.ProviderID, input.IDToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrInvalidToken) {
			return nil, errors.Wrap(domainerrors.ErrFederatedSignInFailed, err.Error())
		}

		return nil, translateIdentityError(err, "federated sign-in failed")
	}

	profile, created, err := srv.ensureProfile(ctx, &signIn.Identity)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User signed in with provider",
		slog.String("userID", profile.ID),
		slog.String("provider", input.ProviderID),
		slog.Bool("newProfile", created),
	)

	return srv.newSession(signIn, profile, created), nil
}

// SignOut revokes the account's sessions and closes its admin session.
func (srv *identityService) SignOut(ctx context.Context, userID string) error {
	srv.sessions.Close(userID)

	if err := srv.identity.RevokeSessions(ctx, userID); err != nil {
		return translateIdentityError(err, "failed to revoke sessions")
	}

	srv.log(ctx).Info("User signed out", slog.String("userID", userID))

	return nil
}

// SendPasswordReset emails a reset link. Unknown addresses are not reported.
func (srv *identityService) SendPasswordReset(ctx context.Context, email string) error {
	link, err := srv.identity.PasswordResetLink(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return nil
		}

		return translateIdentityError(err, "failed to generate password reset link")
	}

	msg, err := passwordResetEmail(srv.serviceName, email, link)
	if err != nil {
		return err
	}

	if err := srv.mailer.Send(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send password reset email")
	}

	return nil
}

// ResendVerification emails a new verification link. Unknown addresses are not reported.
func (srv *identityService) ResendVerification(ctx context.Context, email string) error {
	if err := srv.sendVerification(ctx, email, ""); err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			return nil
		}

		return err
	}

	return nil
}

// Authenticate verifies an ID token and loads the caller's profile.
func (srv *identityService) Authenticate(ctx context.Context, idToken string) (*entity.UserProfile, error) {
	ident, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		if errors.Is(err, service.ErrIdentityDisabled) {
			return nil, errors.Wrap(domainerrors.ErrUserDisabled, "identity disabled")
		}

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	profile, _, err := srv.ensureProfile(ctx, ident)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ensureProfile loads the profile of an identity, creating a customer
// profile for accounts that never had one.
func (srv *identityService) ensureProfile(ctx context.Context, ident *entity.Identity) (*entity.UserProfile, bool, error) {
	profile, err := srv.userRepo.FindByID(ctx, ident.UID)
	if err == nil {
		if profile.IsSuspended() {
			return nil, false, errors.Wrap(domainerrors.ErrUserSuspended, profile.ID)
		}

		return profile, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to load profile")
	}

	profile = srv.newProfile(ident)
	if err := srv.userRepo.Create(ctx, profile); err != nil {
		return nil, false, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile created for identity", slog.String("userID", profile.ID))

	return profile, true, nil
}

func (srv *identityService) newProfile(ident *entity.Identity) *entity.UserProfile {
	now := srv.now()

	return &entity.UserProfile{
		ID:          ident.UID,
		Email:       ident.Email,
		DisplayName: ident.DisplayName,
		Role:        entity.RoleCustomer,
		Status:      entity.UserStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (srv *identityService) newSession(signIn *entity.ProviderSignIn, profile *entity.UserProfile, created bool) *entity.AuthSession {
	return &entity.AuthSession{
		IDToken:      signIn.IDToken,
		RefreshToken: signIn.RefreshToken,
		ExpiresAt:    srv.now().Add(signIn.ExpiresIn),
		Profile:      profile,
		IsNewUser:    created || signIn.IsNewUser,
	}
}

func (srv *identityService) sendVerification(ctx context.Context, email, name string) error {
	link, err := srv.identity.EmailVerificationLink(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			return err
		}

		return translateIdentityError(err, "failed to generate verification link")
	}

	msg, err := verificationEmail(srv.serviceName, email, name, link)
	if err != nil {
		return err
	}

	if err := srv.mailer.Send(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send verification email")
	}

	return nil
}

// translateIdentityError maps identity provider failures onto application errors.
func translateIdentityError(err error, action string) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return errors.Wrap(domainerrors.ErrInvalidCredentials, action)
	case errors.Is(err, service.ErrEmailExists):
		return errors.Wrap(domainerrors.ErrEmailAlreadyExists, action)
	case errors.Is(err, service.ErrTooManyAttempts):
		return errors.Wrap(domainerrors.ErrTooManyAttempts, action)
	case errors.Is(err, service.ErrIdentityDisabled):
		return errors.Wrap(domainerrors.ErrUserDisabled, action)
	case errors.Is(err, service.ErrIdentityNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, action)
	case errors.Is(err, service.ErrInvalidToken):
		return errors.Wrap(domainerrors.ErrUnauthorized, action)
	default:
		return domainerrors.ErrIdentityProviderFailed.WithDetails(errors.Wrap(err, action).Error())
	}
}
