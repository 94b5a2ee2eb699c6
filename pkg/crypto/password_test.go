package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password123!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckPassword("Password123!", hash))
	assert.False(t, CheckPassword("WrongPass", hash))
}

func TestHashPassword_ErrorBranch(t *testing.T) {
	origBcrypt := bcryptGenerateFromPassword
	t.Cleanup(func() {
		bcryptGenerateFromPassword = origBcrypt
	})

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("bcrypt failed")
	}
	_, err := HashPassword("Password123!")
	assert.Error(t, err)
}
