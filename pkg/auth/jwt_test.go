package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	maker := NewTokenMaker("secret", time.Hour)
	userID := uuid.New()

	token, err := maker.Generate(userID, "budi", "operator", "Budi")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "budi", claims.Username)
	assert.Equal(t, "operator", claims.Role)
	assert.Equal(t, "Budi", claims.Name)
	assert.Equal(t, "budi", claims.Subject)
}

func TestValidateExpiredToken(t *testing.T) {
	maker := NewTokenMaker("secret", -time.Minute)

	token, err := maker.Generate(uuid.New(), "budi", "operator", "")
	require.NoError(t, err)

	_, err = maker.Validate(token)
	assert.Error(t, err)
}

func TestValidateWrongSecret(t *testing.T) {
	maker := NewTokenMaker("secret", time.Hour)
	other := NewTokenMaker("different", time.Hour)

	token, err := maker.Generate(uuid.New(), "budi", "operator", "")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	maker := NewTokenMaker("secret", time.Hour)
	_, err := maker.Validate("not-a-token")
	assert.Error(t, err)
}
