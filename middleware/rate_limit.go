package middleware

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/Alex3925/company-suggestion-box/errors"
	"github.com/Alex3925/company-suggestion-box/services"
	"github.com/gin-gonic/gin"
)

// APIRateLimiter limits requests per client IP on API paths using the
// Redis-backed rate limit service. If the limit check itself fails (e.g.
// Redis is down) the request is allowed through so the API stays available.
func APIRateLimiter(limiter services.RateLimiterInterface, requestsPerMinute int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		key := fmt.Sprintf("api:%s", ip)

		allowed, retryAfter, err := limiter.CheckLimit(c.Request.Context(), key, requestsPerMinute, window)
		if err != nil {
			// Fail open on limiter errors.
			c.Next()
			return
		}

		if !allowed {
			retrySeconds := int(retryAfter.Seconds())
			if retrySeconds <= 0 {
				retrySeconds = int(window.Seconds())
			}
			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", requestsPerMinute))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", fmt.Sprintf("%d", retrySeconds))

			_ = c.Error(apperrors.RateLimitExceeded("Too many requests.", retrySeconds))
			c.Abort()
			return
		}

		c.Next()
	}
}

// getClientIP extracts the real client IP from the request. It checks
// X-Forwarded-For and X-Real-IP headers first (for proxies/load balancers),
// then falls back to the connection address.
func getClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}

	return c.ClientIP()
}
