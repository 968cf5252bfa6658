// File: internal/ratelimit/ratelimit_test.go
package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(maxAttempts int, window, ban time.Duration) *MemoryRateLimiter {
	return NewMemoryRateLimiter(&Config{
		WindowSize:    window,
		MaxAttempts:   maxAttempts,
		CleanupPeriod: time.Hour,
		BanDuration:   ban,
	})
}

func TestAllow_WithinLimit(t *testing.T) {
	limiter := newTestLimiter(3, time.Minute, time.Minute)
	defer limiter.Close()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("1.2.3.4")
		assert.True(t, allowed)
		assert.Equal(t, 3-i-1, info.Remaining)
		assert.False(t, info.Banned)
	}
}

func TestAllow_BansAfterLimit(t *testing.T) {
	limiter := newTestLimiter(2, time.Minute, time.Minute)
	defer limiter.Close()

	limiter.Allow("1.2.3.4")
	limiter.Allow("1.2.3.4")

	allowed, info := limiter.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.True(t, info.Banned)
	assert.Positive(t, info.RetryAfter)

	// Ban sticks for subsequent attempts too.
	allowed, info = limiter.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.True(t, info.Banned)
}

func TestAllow_IdentifiersAreIndependent(t *testing.T) {
	limiter := newTestLimiter(1, time.Minute, time.Minute)
	defer limiter.Close()

	limiter.Allow("1.2.3.4")
	blocked, _ := limiter.Allow("1.2.3.4")
	assert.False(t, blocked)

	allowed, _ := limiter.Allow("5.6.7.8")
	assert.True(t, allowed)
}

func TestAllow_WindowResets(t *testing.T) {
	limiter := newTestLimiter(1, 20*time.Millisecond, time.Minute)
	defer limiter.Close()

	limiter.Allow("1.2.3.4")
	time.Sleep(30 * time.Millisecond)

	allowed, info := limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
	assert.False(t, info.Banned)
}

func TestAllow_BanExpires(t *testing.T) {
	// Window and ban both lapse, so the counter resets with the ban.
	limiter := newTestLimiter(1, 20*time.Millisecond, 20*time.Millisecond)
	defer limiter.Close()

	limiter.Allow("1.2.3.4")
	blocked, info := limiter.Allow("1.2.3.4")
	require.False(t, blocked)
	require.True(t, info.Banned)

	time.Sleep(30 * time.Millisecond)

	allowed, _ := limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
}

func TestRecordSuccess_ResetsAttempts(t *testing.T) {
	limiter := newTestLimiter(2, time.Minute, time.Minute)
	defer limiter.Close()

	limiter.Allow("1.2.3.4")
	limiter.Allow("1.2.3.4")
	limiter.RecordSuccess("1.2.3.4")

	allowed, info := limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
	assert.Equal(t, 1, info.Remaining)
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", GetClientIP(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", GetClientIP(req))

	req.Header.Set("X-Forwarded-For", "10.0.0.3, 10.0.0.4")
	assert.Equal(t, "10.0.0.3", GetClientIP(req))
}
