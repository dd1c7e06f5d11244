package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterBoundary(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d should pass", i+1)
	}
	// The (N+1)-th request within the window fails.
	assert.False(t, rl.Allow("1.2.3.4"))

	// Other keys are unaffected.
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	current := time.Unix(1000, 0)
	rl.now = func() time.Time { return current }

	require.True(t, rl.Allow("k"))
	require.True(t, rl.Allow("k"))
	require.False(t, rl.Allow("k"))

	// Once the window elapses the first request succeeds and the count
	// restarts at 1, so a full window's worth passes again.
	current = current.Add(time.Minute + time.Second)
	require.True(t, rl.Allow("k"))
	require.True(t, rl.Allow("k"))
	require.False(t, rl.Allow("k"))
}

func TestRateLimiterLimitHandler(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	called := 0
	handle := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called++
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/artists", nil)
	req.RemoteAddr = "9.9.9.9:4242"

	rec := httptest.NewRecorder()
	handle(rec, req, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handle(rec, req, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, 1, called)
}

func TestLoginLimiterThrottles(t *testing.T) {
	ll := NewLoginLimiter(2)

	limiter := ll.getLimiter("1.1.1.1")
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	// Burst exhausted; the refill rate is far below one per test run.
	assert.False(t, limiter.Allow())

	assert.True(t, ll.getLimiter("2.2.2.2").Allow())
}
