package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhausts(t *testing.T) {
	bucket := NewTokenBucket(3, 1, time.Hour)

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(1, 1, time.Hour)

	assert.True(t, limiter.Allow("alice"))
	assert.False(t, limiter.Allow("alice"))
	assert.True(t, limiter.Allow("bob"))
}

func TestRateLimiterForgetResetsBucket(t *testing.T) {
	limiter := NewRateLimiter(1, 1, time.Hour)

	assert.True(t, limiter.Allow("alice"))
	assert.False(t, limiter.Allow("alice"))

	limiter.Forget("alice")
	assert.True(t, limiter.Allow("alice"))
}
