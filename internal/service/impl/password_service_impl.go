package impl

import (
	"golang.org/x/crypto/bcrypt"

	"orgadmin/internal/service"
)

var _ service.PasswordService = (*PasswordServiceBcrypt)(nil)

type PasswordServiceBcrypt struct {
	cost int
}

// NewPasswordServiceBcrypt uses cost 10, matching what the dashboard's
// account tooling produces.
func NewPasswordServiceBcrypt() *PasswordServiceBcrypt {
	return &PasswordServiceBcrypt{cost: 10}
}

func (p *PasswordServiceBcrypt) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (p *PasswordServiceBcrypt) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
