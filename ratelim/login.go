package ratelim

import (
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"

	"stagelink/utils"
)

// LoginLimiter throttles the credential endpoints harder than the general
// API limiter to slow brute-force attempts. Token bucket per client address.
type LoginLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

func NewLoginLimiter(perMinute int) *LoginLimiter {
	return &LoginLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}
}

func (ll *LoginLimiter) getLimiter(ip string) *rate.Limiter {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	if limiter, exists := ll.visitors[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(ll.limit, ll.burst)
	ll.visitors[ip] = limiter

	// Clean up idle addresses after 10 minutes
	go func() {
		time.Sleep(10 * time.Minute)
		ll.mu.Lock()
		delete(ll.visitors, ip)
		ll.mu.Unlock()
	}()

	return limiter
}

func (ll *LoginLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !ll.getLimiter(utils.ClientIP(r)).Allow() {
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many attempts, please try again later")
			return
		}
		next(w, r, ps)
	}
}
