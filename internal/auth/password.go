package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword parolayı bcrypt ile özetler
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("parola özetlenemedi: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword parolayı kayıtlı özetle karşılaştırır
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
