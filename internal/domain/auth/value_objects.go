package auth

import (
	"shopcompare/internal/domain/user"
)

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials only checks shape; a wrong password is rejected later by the
// hash comparison.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	if passwordStr == "" {
		return Credentials{}, user.ErrPasswordTooWeak
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
