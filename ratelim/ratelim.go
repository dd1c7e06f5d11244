package ratelim

import (
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/julienschmidt/httprouter"

	"stagelink/utils"
)

// maxTrackedKeys bounds the limiter under high client-address cardinality.
// Least-recently-seen addresses are evicted first.
const maxTrackedKeys = 16384

type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter is a sliding-window counter keyed by client address. The window
// resets wholesale once elapsed rather than continuously decaying. Entries
// live in a TTL-evicting LRU so stale keys do not accumulate.
type RateLimiter struct {
	max     int
	window  time.Duration
	mu      sync.Mutex
	entries *expirable.LRU[string, *window]
	now     func() time.Time
}

func NewRateLimiter(maxRequests int, windowDur time.Duration) *RateLimiter {
	return &RateLimiter{
		max:     maxRequests,
		window:  windowDur,
		entries: expirable.NewLRU[string, *window](maxTrackedKeys, nil, windowDur),
		now:     time.Now,
	}
}

// Allow records a request for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, ok := rl.entries.Get(key)
	if !ok || !now.Before(entry.resetAt) {
		rl.entries.Add(key, &window{count: 1, resetAt: now.Add(rl.window)})
		return true
	}
	if entry.count >= rl.max {
		return false
	}
	entry.count++
	return true
}

// Limit enforces the window per client address.
func (rl *RateLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !rl.Allow(utils.ClientIP(r)) {
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		next(w, r, ps)
	}
}
