package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engelsiz-ankara-backend/internal/domain/model"
)

func TestGenerateAndParseUserToken(t *testing.T) {
	m := NewTokenManager("test-anahtari", time.Hour)

	token, err := m.Generate(model.TokenData{Username: "ayse", Role: model.RoleUser})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "ayse", claims.Subject)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.Nil(t, claims.StaffRole)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestGenerateAndParseStaffToken(t *testing.T) {
	m := NewTokenManager("test-anahtari", time.Hour)

	token, err := m.Generate(model.TokenData{
		Username:  "belediye_admin",
		Role:      model.RoleStaff,
		StaffRole: model.StaffRoleYonetici,
	})
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, claims.Role)
	require.NotNil(t, claims.StaffRole)
	assert.Equal(t, model.StaffRoleYonetici, *claims.StaffRole)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("dogru-anahtar", time.Hour).Generate(model.TokenData{Username: "ayse", Role: model.RoleUser})
	require.NoError(t, err)

	_, err = NewTokenManager("yanlis-anahtar", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-anahtari", time.Hour)

	_, err := m.Parse("bu.bir.token.degil")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-anahtari", -time.Minute)

	token, err := m.Generate(model.TokenData{Username: "ayse", Role: model.RoleUser})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsEmptySubject(t *testing.T) {
	m := NewTokenManager("test-anahtari", time.Hour)

	token, err := m.Generate(model.TokenData{Username: "", Role: model.RoleUser})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEachTokenGetsUniqueID(t *testing.T) {
	m := NewTokenManager("test-anahtari", time.Hour)

	first, err := m.Generate(model.TokenData{Username: "ayse", Role: model.RoleUser})
	require.NoError(t, err)
	second, err := m.Generate(model.TokenData{Username: "ayse", Role: model.RoleUser})
	require.NoError(t, err)

	firstClaims, err := m.Parse(first)
	require.NoError(t, err)
	secondClaims, err := m.Parse(second)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("gizli123")
	require.NoError(t, err)
	assert.NotEqual(t, "gizli123", hash)

	assert.True(t, VerifyPassword("gizli123", hash))
	assert.False(t, VerifyPassword("yanlis", hash))
	assert.False(t, VerifyPassword("gizli123", "bozuk-ozet"))
}
