package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	preferences  Preferences
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string, prefs Preferences, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		preferences:  prefs,
		createdAt:    now,
		updatedAt:    now,
	}
}

// Reconstruct rebuilds a user from storage without re-validating.
func Reconstruct(id uuid.UUID, name, email, passwordHash string, prefs Preferences, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         Name{value: name},
		email:        Email{value: email},
		passwordHash: passwordHash,
		preferences:  prefs,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Name() Name               { return u.name }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Preferences() Preferences { return u.preferences }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

func (u *User) UpdatePreferences(p Preferences, now time.Time) {
	u.preferences = p
	u.updatedAt = now
}
