package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(string(hash), "correct horse"))
	assert.ErrorIs(t, VerifyPassword(string(hash), "wrong horse"), ErrWrongPassword)
	assert.ErrorIs(t, VerifyPassword(string(hash), ""), ErrWrongPassword)
	assert.ErrorIs(t, VerifyPassword("not-a-bcrypt-hash", "correct horse"), ErrWrongPassword)
}

func TestPasswordVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewPasswordVerifier(string(hash))

	assert.NoError(t, v.Verify("s3cret"))
	assert.ErrorIs(t, v.Verify("guess"), ErrWrongPassword)
}
