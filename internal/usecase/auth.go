package usecase

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/auth.go -package=usecasemock

import (
	"context"
	"log/slog"

	"shopcompare/internal/domain/auth"
	"shopcompare/internal/domain/user"
	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/pkg/jwt"
	"shopcompare/internal/pkg/password"
	"shopcompare/internal/pkg/patch"
	"shopcompare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.Mark(errs.New("User with this email already exists"), errs.ErrConflict)
	ErrInvalidCredentials = errs.Mark(errs.New("Invalid credentials"), errs.ErrUnauthorized)
	ErrUserNotFound       = errs.Mark(errs.New("User not found"), errs.ErrNotFound)
	ErrTokenGeneration    = errs.Mark(errs.New("token generation failed"), errs.ErrInternal)
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Theme    string
}

type PreferencesPatch struct {
	Theme *string
}

type AuthResult struct {
	Token string
	User  *user.User
}

type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, credentials auth.Credentials) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, p PreferencesPatch) (*user.User, error)
}

type authUseCaseImpl struct {
	users      shared.UserStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(store shared.Store, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		users:      store.Users(),
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name, err := user.NewName(in.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	theme, err := user.NewTheme(in.Theme)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	_, err = a.users.FindByEmail(ctx, email.Value())
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(errs.Wrap(err, "look up email"), errs.ErrInternal)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "hash password"), errs.ErrInternal)
	}

	u := user.NewUser(name, email, hash, user.Preferences{Theme: theme}, a.clock.Now())
	if err := a.users.Insert(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(errs.Wrap(err, "insert user"), errs.ErrInternal)
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Email().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("user registered", "user_id", u.ID())
	return &AuthResult{Token: token, User: u}, nil
}

// Login answers every mismatch with the same error so callers cannot probe
// which emails exist.
func (a *authUseCaseImpl) Login(ctx context.Context, credentials auth.Credentials) (*AuthResult, error) {
	u, err := a.users.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(errs.Wrap(err, "look up user"), errs.ErrInternal)
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Email().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{Token: token, User: u}, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "find user"), errs.ErrInternal)
	}
	return u, nil
}

func (a *authUseCaseImpl) UpdatePreferences(ctx context.Context, userID uuid.UUID, p PreferencesPatch) (*user.User, error) {
	u, err := a.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs := u.Preferences()
	theme, err := user.NewTheme(patch.CoalesceString(p.Theme, prefs.Theme.String()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	prefs.Theme = theme

	u.UpdatePreferences(prefs, a.clock.Now())
	if err := a.users.Update(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "update preferences"), errs.ErrInternal)
	}
	return u, nil
}
