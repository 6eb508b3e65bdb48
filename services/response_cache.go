package services

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Explicit response cache keyed by (resource, parameters). Entries go stale
// after CacheStaleness; writes that touch a subscriber invalidate by prefix.

const CacheStaleness = 5 * time.Minute

type cacheEntry struct {
	value    any
	storedAt time.Time
}

var responseCache sync.Map

func CacheKey(resource string, params ...any) string {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, resource)
	for _, p := range params {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, "|")
}

func LoadCachedResponse(key string) (any, bool) {
	cached, ok := responseCache.Load(key)
	if !ok {
		return nil, false
	}
	entry := cached.(cacheEntry)
	if time.Since(entry.storedAt) > CacheStaleness {
		responseCache.Delete(key)
		return nil, false
	}
	return entry.value, true
}

func StoreCachedResponse(key string, value any) {
	responseCache.Store(key, cacheEntry{value: value, storedAt: time.Now()})
}

func InvalidateCachedResponse(key string) {
	responseCache.Delete(key)
}

// InvalidateCachedPrefix drops every entry whose key starts with prefix,
// e.g. all diary days of one subscriber.
func InvalidateCachedPrefix(prefix string) {
	responseCache.Range(func(k, _ any) bool {
		if strings.HasPrefix(k.(string), prefix) {
			responseCache.Delete(k)
		}
		return true
	})
}
