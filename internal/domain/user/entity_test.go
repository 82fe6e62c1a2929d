//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"shopcompare/internal/domain/user"
	"shopcompare/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Test User", actual.Name().Value())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, builder.PasswordHash, actual.PasswordHash())
		assert.Equal(t, user.ThemeLight, actual.Preferences().Theme)
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "too long",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", 101)) },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("theme", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "dark",
				mutate: func(b *builder.UserBuilder) { b.WithTheme("dark") },
			},
			{
				name:   "empty defaults to light",
				mutate: func(b *builder.UserBuilder) { b.WithTheme("") },
			},
			{
				name:   "unknown",
				mutate: func(b *builder.UserBuilder) { b.WithTheme("solarized") },
				errIs:  user.ErrInvalidTheme,
			},
		})
	})
}

func TestNewEmail_Normalizes(t *testing.T) {
	email, err := user.NewEmail("  Asha.Rao@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "asha.rao@example.com", email.Value())
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", p.Value())
}

func TestUser_UpdatePreferences(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	later := u.CreatedAt().Add(time.Hour)
	u.UpdatePreferences(user.Preferences{Theme: user.ThemeDark}, later)

	if diff := cmp.Diff(user.Preferences{Theme: user.ThemeDark}, u.Preferences(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("preferences mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, later, u.UpdatedAt())
	assert.NotEqual(t, later, u.CreatedAt())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
