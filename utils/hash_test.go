package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateRandomToken(t *testing.T) {
	a := GenerateRandomToken(6)
	b := GenerateRandomToken(6)

	assert.Len(t, a, 6)
	assert.Len(t, b, 6)
	assert.NotEqual(t, a, b)
}
