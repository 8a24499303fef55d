package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"engelsiz-ankara-backend/internal/domain/model"
)

// ErrInvalidToken doğrulanamayan ya da süresi dolmuş token için döner
var ErrInvalidToken = errors.New("geçersiz ya da süresi dolmuş token")

// Claims erişim tokenının taşıdığı alanlar.
// StaffRole yalnızca personel tokenlarında dolu, kullanıcı tokenlarında null kalır.
type Claims struct {
	Role      string  `json:"role"`
	StaffRole *string `json:"staff_role"`
	jwt.RegisteredClaims
}

// TokenManager HS256 imzalı erişim tokenları üretir ve doğrular
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager verilen gizli anahtar ve geçerlilik süresiyle yönetici oluşturur
func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), expiry: expiry}
}

// Generate kullanıcı bilgilerinden imzalı bir erişim tokenı üretir
func (m *TokenManager) Generate(data model.TokenData) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role: data.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   data.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	if data.StaffRole != "" {
		staffRole := data.StaffRole
		claims.StaffRole = &staffRole
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token imzalanamadı: %w", err)
	}
	return signed, nil
}

// Parse tokenı doğrular ve içindeki alanları döndürür
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("beklenmeyen imza yöntemi: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
