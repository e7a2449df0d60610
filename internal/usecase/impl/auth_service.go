package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "tours/internal/delivery/context"
	"tours/internal/domain/entity"
	domainerrors "tours/internal/domain/errors"
	"tours/internal/domain/repository"
	"tours/internal/domain/service"
	"tours/internal/errors"
	"tours/internal/usecase"

	"go.uber.org/fx"
)

const resetEmailSubject = "Your password reset token (valid for 10 min)"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	resetTokens service.ResetTokenGenerator
	mailer      service.Mailer
	logger      *slog.Logger
	now         func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	ResetTokens service.ResetTokenGenerator
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		resetTokens: params.ResetTokens,
		mailer:      params.Mailer,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a regular user and logs them in.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	user, err := srv.prepareNewUser(input)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", user.ID.String()))

	return srv.issue(user)
}

// prepareNewUser validates signup input and hashes the password. Role is
// always user; passwordChangedAt stays unset on creation.
func (srv *authService) prepareNewUser(input *usecase.SignupInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)

	var p problems
	checkName(&p, input.Name)
	checkEmail(&p, email)
	checkNewPassword(&p, input.Password, input.PasswordConfirm)
	if err := p.err(); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	return &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Photo:        strings.TrimSpace(input.Photo),
		Role:         entity.RoleUser,
		PasswordHash: hash,
	}, nil
}

// Login answers InvalidCredentials for both an unknown email and a wrong password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Login password mismatch", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(user)
}

// Authenticate verifies token, loads its subject, and rejects tokens issued
// before the subject's last password change.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrNotLoggedIn
	}

	claims, err := srv.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNoLongerExists
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token subject")
	}

	if user.ChangedPasswordAfter(claims.IssuedAt) {
		return nil, domainerrors.ErrStalePassword
	}

	return user, nil
}

func (srv *authService) Authorize(user *entity.User, allowed []entity.Role) error {
	if user == nil {
		return domainerrors.ErrNotLoggedIn
	}
	if !entity.Roles(allowed).Contains(user.Role) {
		return domainerrors.ErrForbidden
	}

	return nil
}

// ForgotPassword stores a reset token hash and mails the plaintext. The stored
// reset is withdrawn when the mail cannot be delivered.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrNoUserWithEmail
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user for password reset")
	}

	token, err := srv.resetTokens.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	if err := srv.userRepo.SetPasswordReset(ctx, user.ID, token.Hash, token.ExpiresAt); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	resetURL := strings.TrimRight(input.ResetURLBase, "/") + "/" + token.Plain
	email := &service.Email{
		To:      user.Email,
		Subject: resetEmailSubject,
		Body: fmt.Sprintf("Forgot your password? Submit a PATCH request with your new password and passwordConfirm to: %s.\n"+
			"If you didn't forget your password, please ignore this email!", resetURL),
	}

	if err := srv.mailer.Send(ctx, email); err != nil {
		srv.log(ctx).Error("Failed to send password reset email",
			slog.String("userID", user.ID.String()),
			slog.Any("error", err),
		)

		if clearErr := srv.userRepo.ClearPasswordReset(ctx, user.ID); clearErr != nil {
			srv.log(ctx).Error("Failed to withdraw password reset", slog.String("userID", user.ID.String()), slog.Any("error", clearErr))
		}

		return domainerrors.ErrDeliveryFailed
	}

	srv.log(ctx).Info("Password reset token sent", slog.String("userID", user.ID.String()))

	return nil
}

// ResetPassword consumes a reset token. The user row stays locked from lookup
// to password write, so one token can succeed at most once.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (*usecase.AuthOutput, error) {
	hash := srv.resetTokens.HashToken(input.Token)

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByResetToken(ctx, hash, srv.now())
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenFailed
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by reset token")
		}

		if err := srv.changePassword(ctx, userRepo, found, input.Password, input.PasswordConfirm); err != nil {
			return err
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Password reset", slog.String("userID", user.ID.String()))

	return srv.issue(user)
}

// UpdatePassword changes the password of a logged-in user after re-checking the current one.
func (srv *authService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNoLongerExists
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for password update")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return nil, domainerrors.ErrWrongCurrentPassword
	}

	if err := srv.changePassword(ctx, srv.userRepo, user, input.Password, input.PasswordConfirm); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Password updated", slog.String("userID", user.ID.String()))

	return srv.issue(user)
}

// changePassword validates and hashes password, then writes hash and
// passwordChangedAt together. Tokens are compared at second granularity, so a
// token issued in the same second as the change stays valid.
func (srv *authService) changePassword(ctx context.Context, userRepo repository.UserRepository, user *entity.User, password, confirm string) error {
	var p problems
	checkNewPassword(&p, password, confirm)
	if err := p.err(); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	changedAt := srv.now()
	if err := userRepo.UpdatePassword(ctx, user.ID, hash, changedAt); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	user.PasswordHash = hash
	user.PasswordChangedAt = &changedAt
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil

	return nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokens.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{
		User:      user,
		Token:     token,
		ExpiresAt: srv.now().Add(srv.tokens.TTL()),
	}, nil
}
