package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key-at-least-32-characters-long"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)

	token, err := manager.Generate(1, "admin", RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestTokenManager_Validate_WrongSecret(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)
	other := NewTokenManager("another-secret-key-also-32-characters-xx", 60)

	token, err := other.Generate(2, "alice", RoleCustomer)
	assert.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Validate_Tampered(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)

	token, err := manager.Generate(2, "alice", RoleCustomer)
	assert.NoError(t, err)

	_, err = manager.Validate(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Validate_Expired(t *testing.T) {
	manager := NewTokenManager(testSecret, -1)

	token, err := manager.Generate(2, "alice", RoleCustomer)
	assert.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
