package middleware

import (
	"net/http"
	"sync"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type userLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func (u *userLimiters) get(key string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	l, ok := u.limiters[key]
	if !ok {
		l = rate.NewLimiter(u.rps, u.burst)
		u.limiters[key] = l
	}
	return l
}

// RateLimitByUser limits each authenticated user (falling back to client IP)
// to rps requests per second with the given burst.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	store := &userLimiters{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}

	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = c.ClientIP()
		}

		if !store.get(key).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RateLimitByIP limits by client IP. Used on the unauthenticated auth
// endpoints where no user id exists yet.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	store := &userLimiters{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !store.get(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
