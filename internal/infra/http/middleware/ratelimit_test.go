package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowWithinLimit(t *testing.T) {
	limiter := NewRateLimiter(3, 60*time.Second)

	allowed, info := limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
	assert.Equal(t, 3, info.Limit)
	assert.Equal(t, 2, info.Remaining)

	allowed, info = limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
	assert.Equal(t, 1, info.Remaining)

	allowed, info = limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
	assert.Equal(t, 0, info.Remaining)
}

func TestAllowRejectsOverLimit(t *testing.T) {
	limiter := NewRateLimiter(3, 60*time.Second)

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("1.2.3.4")
		assert.True(t, allowed)
	}

	allowed, info := limiter.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.GreaterOrEqual(t, info.ResetSeconds, 1)
	assert.LessOrEqual(t, info.ResetSeconds, 60)
}

func TestAllowIsolatesClients(t *testing.T) {
	limiter := NewRateLimiter(1, 60*time.Second)

	allowed, _ := limiter.Allow("1.1.1.1")
	assert.True(t, allowed)

	// Cliente diferente não compartilha cota
	allowed, _ = limiter.Allow("2.2.2.2")
	assert.True(t, allowed)

	allowed, _ = limiter.Allow("1.1.1.1")
	assert.False(t, allowed)
}

func TestAllowSlidingWindowExpiry(t *testing.T) {
	limiter := NewRateLimiter(2, 50*time.Millisecond)

	limiter.Allow("1.2.3.4")
	limiter.Allow("1.2.3.4")

	allowed, _ := limiter.Allow("1.2.3.4")
	assert.False(t, allowed)

	// Janela desliza: timestamps antigos saem e a cota volta
	time.Sleep(60 * time.Millisecond)

	allowed, _ = limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
}

func TestStatsDoesNotMutate(t *testing.T) {
	limiter := NewRateLimiter(5, 60*time.Second)

	limiter.Allow("1.1.1.1")
	limiter.Allow("1.1.1.1")
	limiter.Allow("2.2.2.2")

	stats := limiter.Stats()
	assert.Equal(t, 2, stats.ActiveClients)
	assert.Equal(t, 3, stats.RequestsInWindow)

	// Chamada repetida devolve o mesmo agregado
	again := limiter.Stats()
	assert.Equal(t, stats, again)
}

func TestPruneRemovesIdleClients(t *testing.T) {
	limiter := NewRateLimiter(5, 30*time.Millisecond)

	limiter.Allow("idle-client")
	time.Sleep(40 * time.Millisecond)
	limiter.Allow("active-client")

	removed := limiter.Prune()
	assert.Equal(t, 1, removed)

	stats := limiter.Stats()
	assert.Equal(t, 1, stats.ActiveClients)
}

func TestMiddlewareSetsHeadersAndRejects(t *testing.T) {
	limiter := NewRateLimiter(2, 60*time.Second)

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	doRequest := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/webhook/score-lead", nil)
		req.Header.Set("X-Forwarded-For", "9.9.9.9")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	first := doRequest()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := doRequest()
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := doRequest()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
	assert.Contains(t, third.Body.String(), "Too many requests")
}

func TestGetClientIPPrecedence(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	assert.Equal(t, "10.0.0.1:5000", GetClientIP(req))

	req.Header.Set("X-Real-IP", "8.8.8.8")
	assert.Equal(t, "8.8.8.8", GetClientIP(req))

	req.Header.Set("X-Forwarded-For", "9.9.9.9")
	assert.Equal(t, "9.9.9.9", GetClientIP(req))
}
