package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrWrongPassword возвращается при неверном пароле
var ErrWrongPassword = errors.New("auth: wrong password")

// VerifyPassword сверяет пароль с bcrypt-хэшем из окружения.
// Сравнение внутри bcrypt константное по времени; plain-text пароля
// и каких-либо фолбэков в коде нет.
func VerifyPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// PasswordVerifier держит хэш админского пароля
type PasswordVerifier struct {
	hash string
}

func NewPasswordVerifier(hash string) *PasswordVerifier {
	return &PasswordVerifier{hash: hash}
}

// Verify сверяет пароль с хэшем
func (v *PasswordVerifier) Verify(password string) error {
	return VerifyPassword(v.hash, password)
}
