//go:build unit || e2e

package builder

import (
	reqdto "shopcompare/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name     string
	Email    string
	Password string
	Theme    *string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithTheme(theme string) *AuthBuilder {
	a.Theme = &theme
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	req := reqdto.RegisterRequest{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
	}
	if a.Theme != nil {
		req.Preferences = &reqdto.PreferencesRequest{Theme: a.Theme}
	}
	return req
}
