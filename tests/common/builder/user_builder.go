//go:build unit || e2e

package builder

import (
	"time"

	"shopcompare/internal/domain/user"

	"github.com/google/uuid"
)

// PasswordHash is a bcrypt hash of DefaultPassword.
const PasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const DefaultPassword = "password123"

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Theme        string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: PasswordHash,
		Theme:        "light",
		CreatedAt:    time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// BuildDomain validates through the domain constructors.
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	theme, err := user.NewTheme(u.Theme)
	if err != nil {
		return nil, err
	}
	return user.NewUser(name, email, u.PasswordHash, user.Preferences{Theme: theme}, u.CreatedAt), nil
}

// BuildStored skips validation and keeps the builder's ID, like a row read back
// from a store.
func (u *UserBuilder) BuildStored() *user.User {
	return user.Reconstruct(u.ID, u.Name, u.Email, u.PasswordHash,
		user.Preferences{Theme: user.Theme(u.Theme)}, u.CreatedAt, u.CreatedAt)
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithTheme(theme string) *UserBuilder {
	u.Theme = theme
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}
