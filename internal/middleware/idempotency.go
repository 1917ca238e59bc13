package middleware

import (
	"net/http"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/pkg/response"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/cache"

	"github.com/gin-gonic/gin"
)

// Idempotency guards double submits (double-tapped "Place Order"). When the
// client sends an Idempotency-Key header, the first request claims a lock and
// concurrent retries are rejected with 409. The handler releases the lock via
// the stored idempotency_lock_key once the operation finishes.
func Idempotency(c cache.Cache, scope string, ttl time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.GetHeader("Idempotency-Key")
		if key == "" {
			ctx.Next()
			return
		}

		lockKey := scope + ":" + ctx.GetString("user_id") + ":" + key
		ok, err := c.TryLock(ctx.Request.Context(), lockKey, ttl)
		if err != nil {
			// Cache trouble must not block checkout.
			ctx.Next()
			return
		}
		if !ok {
			response.Error(ctx, http.StatusConflict, "DUPLICATE_REQUEST", "This request is already being processed", nil)
			ctx.Abort()
			return
		}

		ctx.Set("idempotency_lock_key", lockKey)
		ctx.Next()
	}
}
