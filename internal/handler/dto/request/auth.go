package request

import (
	"shopcompare/internal/domain/auth"
	"shopcompare/internal/usecase"
)

type RegisterRequest struct {
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email" binding:"required,email"`
	Password    string              `json:"password" binding:"required,min=8"`
	Preferences *PreferencesRequest `json:"preferences,omitempty"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	in := usecase.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
	if r.Preferences != nil && r.Preferences.Theme != nil {
		in.Theme = *r.Preferences.Theme
	}
	return in
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type PreferencesRequest struct {
	Theme *string `json:"theme,omitempty" binding:"omitempty,oneof=light dark"`
}

func (r PreferencesRequest) ToPatch() usecase.PreferencesPatch {
	return usecase.PreferencesPatch{Theme: r.Theme}
}
