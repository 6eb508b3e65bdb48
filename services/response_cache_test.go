package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "diary|7|2024-03-18", CacheKey("diary", uint(7), "2024-03-18"))
	assert.Equal(t, "subscribers", CacheKey("subscribers"))
}

func TestResponseCacheStoreLoad(t *testing.T) {
	key := CacheKey("test-resource", 1)
	defer InvalidateCachedResponse(key)

	_, ok := LoadCachedResponse(key)
	assert.False(t, ok)

	StoreCachedResponse(key, "value")
	got, ok := LoadCachedResponse(key)
	require.True(t, ok)
	assert.Equal(t, "value", got)

	InvalidateCachedResponse(key)
	_, ok = LoadCachedResponse(key)
	assert.False(t, ok)
}

func TestResponseCachePrefixInvalidation(t *testing.T) {
	StoreCachedResponse(CacheKey("diary", uint(42), "2024-03-18"), 1)
	StoreCachedResponse(CacheKey("diary", uint(42), "2024-03-19"), 2)
	StoreCachedResponse(CacheKey("diary", uint(43), "2024-03-18"), 3)
	defer InvalidateCachedPrefix(CacheKey("diary", uint(43)))

	InvalidateCachedPrefix(CacheKey("diary", uint(42)))

	_, ok := LoadCachedResponse(CacheKey("diary", uint(42), "2024-03-18"))
	assert.False(t, ok)
	_, ok = LoadCachedResponse(CacheKey("diary", uint(42), "2024-03-19"))
	assert.False(t, ok)

	_, ok = LoadCachedResponse(CacheKey("diary", uint(43), "2024-03-18"))
	assert.True(t, ok)
}
