package crypto_test

import (
	"testing"

	"github.com/dermascan-backend/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := crypto.HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", hash)
	assert.True(t, crypto.CheckPassword("pw123", hash))
	assert.False(t, crypto.CheckPassword("wrong", hash))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := crypto.HashPassword("pw123")
	require.NoError(t, err)

	second, err := crypto.HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
