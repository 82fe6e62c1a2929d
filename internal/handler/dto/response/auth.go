package response

import (
	"time"

	"shopcompare/internal/domain/user"

	"github.com/google/uuid"
)

type AuthResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}

type PreferencesResponse struct {
	Theme string `json:"theme"`
}

type UserResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Preferences PreferencesResponse `json:"preferences"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type UpdatePreferencesResponse struct {
	Message     string              `json:"message"`
	Preferences PreferencesResponse `json:"preferences"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID(),
		Name:        u.Name().Value(),
		Email:       u.Email().Value(),
		Preferences: PreferencesResponse{Theme: u.Preferences().Theme.String()},
		CreatedAt:   u.CreatedAt(),
	}
}
