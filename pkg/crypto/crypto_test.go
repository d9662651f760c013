package crypto

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.True(t, VerifyPassword(hash, "correct horse battery staple"))
	require.False(t, VerifyPassword(hash, "wrong password"))
	require.False(t, VerifyPassword("not-a-hash", "anything"))
}

func TestGenerateOTPStaysInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, otpMin)
		require.LessOrEqual(t, n, otpMax)
	}
}

func TestGenerateTokenLengthAndUniqueness(t *testing.T) {
	a, err := GenerateToken(32)
	require.NoError(t, err)
	b, err := GenerateToken(32)
	require.NoError(t, err)

	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
}
