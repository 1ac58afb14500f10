package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aivanta-site/internal/config"
)

const RateLimitManagerKey = "rateLimitManager"

// RateLimitMiddleware limits state-changing requests per client IP. Reads are
// never limited. It requires a RateLimitManager to be set in the context by
// the application.
func RateLimitMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if shouldBypassRateLimit(c.Request) {
			c.Next()
			return
		}

		managerVal, exists := c.Get(RateLimitManagerKey)
		if !exists {
			c.Next()
			return
		}

		manager, ok := managerVal.(*RateLimitManager)
		if !ok || manager == nil {
			c.Next()
			return
		}

		limiter := manager.GetVisitor(
			c.ClientIP(),
			cfg.RateLimitRequests,
			cfg.RateLimitWindow,
			cfg.RateLimitBurst,
		)

		if limiter == nil || limiter.Allow() {
			c.Next()
			return
		}

		c.Header("Retry-After", "60")
		switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
		case gin.MIMEHTML:
			c.Data(http.StatusTooManyRequests, "text/html; charset=utf-8",
				[]byte(`<!doctype html><meta charset="utf-8"><p>Te veel aanvragen. Probeer het over een minuut opnieuw.</p><p><a href="/">Terug naar de homepage</a></p>`))
		default:
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
		}
		c.Abort()
	}
}

func shouldBypassRateLimit(r *http.Request) bool {
	if r == nil {
		return true
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
