package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RateLimitKey returns the counter key for a client within a fixed window.
// window is the window's index (unix seconds divided by the window length).
func (r *CacheKeyStruct) RateLimitKey(clientIP string, window int64) string {
	return fmt.Sprintf("ratelimit:%s:%d", clientIP, window)
}

var CacheKey = NewCacheKeyStruct()
