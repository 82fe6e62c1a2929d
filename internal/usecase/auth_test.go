//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shopcompare/internal/domain/auth"
	"shopcompare/internal/domain/user"
	"shopcompare/internal/infra/memstore"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/pkg/jwt"
	"shopcompare/internal/pkg/password"
	"shopcompare/internal/usecase"
	"shopcompare/internal/usecase/shared"
	"shopcompare/tests/common/builder"
	"shopcompare/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	ctx   context.Context
	store shared.Store
	jwt   *jwt.Service
	clock *clock.MockClock
	uc    usecase.AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.jwt = jwt.NewService("test-secret-key", time.Hour)
	s.clock = clock.NewMockClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	s.uc = usecase.NewAuthUseCase(s.store, s.jwt, s.clock)
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

// seedUser stores a user whose password is DefaultPassword.
func (s *AuthUseCaseTestSuite) seedUser(email string) *user.User {
	hash, err := password.HashPasswordWithCost(builder.DefaultPassword, bcrypt.MinCost)
	s.Require().NoError(err)
	u, err := builder.NewUserBuilder().WithEmail(email).WithPasswordHash(hash).BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.store.Users().Insert(s.ctx, u))
	return u
}

func (s *AuthUseCaseTestSuite) TestRegister() {
	s.Run("creates the user and issues a token", func() {
		res, err := s.uc.Register(s.ctx, usecase.RegisterInput{
			Name:     "Asha Rao",
			Email:    "Asha@Example.com",
			Password: "password123",
			Theme:    "dark",
		})
		s.Require().NoError(err)

		s.Equal("asha@example.com", res.User.Email().Value())
		s.Equal(user.ThemeDark, res.User.Preferences().Theme)
		s.NotEqual("password123", res.User.PasswordHash())
		s.NoError(password.ComparePassword(res.User.PasswordHash(), "password123"))

		claims, err := s.jwt.ValidateToken(res.Token)
		s.Require().NoError(err)
		s.Equal(res.User.ID(), claims.UserID)
		s.Equal("asha@example.com", claims.Email)

		stored, err := s.store.Users().FindByEmail(s.ctx, "asha@example.com")
		s.Require().NoError(err)
		s.Equal(res.User.ID(), stored.ID())
	})

	s.Run("theme defaults to light", func() {
		res, err := s.uc.Register(s.ctx, usecase.RegisterInput{
			Name: "Ravi", Email: "ravi@example.com", Password: "password123",
		})
		s.Require().NoError(err)
		s.Equal(user.ThemeLight, res.User.Preferences().Theme)
	})

	s.Run("duplicate email is a conflict", func() {
		_, err := s.uc.Register(s.ctx, usecase.RegisterInput{
			Name: "Other", Email: "ASHA@example.com", Password: "password123",
		})
		s.ErrorIs(err, usecase.ErrEmailTaken)
		s.True(errs.Is(err, errs.ErrConflict))
	})

	invalid := []struct {
		name  string
		in    usecase.RegisterInput
		errIs error
	}{
		{"blank name", usecase.RegisterInput{Name: " ", Email: "a@example.com", Password: "password123"}, user.ErrInvalidName},
		{"bad email", usecase.RegisterInput{Name: "A", Email: "nope", Password: "password123"}, user.ErrInvalidEmail},
		{"short password", usecase.RegisterInput{Name: "A", Email: "a@example.com", Password: "short"}, user.ErrPasswordTooWeak},
		{"unknown theme", usecase.RegisterInput{Name: "A", Email: "a@example.com", Password: "password123", Theme: "blue"}, user.ErrInvalidTheme},
	}
	for _, tt := range invalid {
		s.Run(tt.name, func() {
			_, err := s.uc.Register(s.ctx, tt.in)
			s.ErrorIs(err, tt.errIs)
			s.True(errs.Is(err, errs.ErrValidation))
		})
	}
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	u := s.seedUser("login@example.com")

	s.Run("valid credentials", func() {
		creds, err := auth.NewCredentials("LOGIN@example.com", builder.DefaultPassword)
		s.Require().NoError(err)

		res, err := s.uc.Login(s.ctx, creds)
		s.Require().NoError(err)
		s.Equal(u.ID(), res.User.ID())

		claims, err := s.jwt.ValidateToken(res.Token)
		s.Require().NoError(err)
		s.Equal(u.ID(), claims.UserID)
	})

	s.Run("wrong password and unknown email look the same", func() {
		wrong, err := auth.NewCredentials("login@example.com", "wrong-password")
		s.Require().NoError(err)
		_, errWrong := s.uc.Login(s.ctx, wrong)

		unknown, err := auth.NewCredentials("nobody@example.com", builder.DefaultPassword)
		s.Require().NoError(err)
		_, errUnknown := s.uc.Login(s.ctx, unknown)

		s.ErrorIs(errWrong, usecase.ErrInvalidCredentials)
		s.ErrorIs(errUnknown, usecase.ErrInvalidCredentials)
		s.Equal(errs.Cause(errWrong), errs.Cause(errUnknown))
		s.True(errs.Is(errWrong, errs.ErrUnauthorized))
	})
}

func (s *AuthUseCaseTestSuite) TestGetCurrentUser() {
	u := s.seedUser("me@example.com")

	got, err := s.uc.GetCurrentUser(s.ctx, u.ID())
	s.Require().NoError(err)
	s.Equal("me@example.com", got.Email().Value())

	_, err = s.uc.GetCurrentUser(s.ctx, uuid.New())
	s.ErrorIs(err, usecase.ErrUserNotFound)
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *AuthUseCaseTestSuite) TestUpdatePreferences() {
	u := s.seedUser("prefs@example.com")
	s.clock.Add(time.Hour)

	s.Run("sets the theme", func() {
		got, err := s.uc.UpdatePreferences(s.ctx, u.ID(), usecase.PreferencesPatch{Theme: testutil.Ptr("dark")})
		s.Require().NoError(err)
		s.Equal(user.ThemeDark, got.Preferences().Theme)
		s.Equal(s.clock.Now(), got.UpdatedAt())

		stored, err := s.store.Users().FindByID(s.ctx, u.ID())
		s.Require().NoError(err)
		s.Equal(user.ThemeDark, stored.Preferences().Theme)
	})

	s.Run("absent theme keeps the current one", func() {
		got, err := s.uc.UpdatePreferences(s.ctx, u.ID(), usecase.PreferencesPatch{})
		s.Require().NoError(err)
		s.Equal(user.ThemeDark, got.Preferences().Theme)
	})

	s.Run("rejects unknown theme", func() {
		_, err := s.uc.UpdatePreferences(s.ctx, u.ID(), usecase.PreferencesPatch{Theme: testutil.Ptr("neon")})
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("unknown user", func() {
		_, err := s.uc.UpdatePreferences(s.ctx, uuid.New(), usecase.PreferencesPatch{Theme: testutil.Ptr("dark")})
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})
}

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("test-secret-key", time.Hour)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "v@example.com")
	if err != nil {
		t.Fatal(err)
	}

	gotID, gotEmail, err := validator.ValidateToken(token)
	if err != nil || gotID != userID || gotEmail != "v@example.com" {
		t.Errorf("ValidateToken() = %v, %q, %v", gotID, gotEmail, err)
	}

	if _, _, err := validator.ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}

	other := jwt.NewService("another-secret", time.Hour)
	forged, err := other.GenerateToken(userID, "v@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := validator.ValidateToken(forged); err == nil {
		t.Error("expected error for token signed with another key")
	}
}
