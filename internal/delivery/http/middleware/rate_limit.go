package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Harsh-gitaccount/orivanta-website/internal/delivery/http/response"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/logger"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/ratelimit"
)

// RateLimitOptions holds configuration for the rate limiting middleware
type RateLimitOptions struct {
	// Limit is only used for the X-RateLimit-Limit header; the limiter
	// itself carries the quota.
	Limit int
	// TrustProxy keys the limiter on the first X-Forwarded-For entry
	// instead of the connection's remote address.
	TrustProxy bool
}

// RateLimit gates requests through the injected limiter, keyed by client IP.
// A limiter backend failure admits the request (fail open) so a Redis outage
// does not take the contact form down with it.
func RateLimit(limiter ratelimit.Limiter, opts RateLimitOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientIP(c, opts.TrustProxy)

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Log.Warn("rate limiter unavailable, admitting request", "error", err, "ip", key)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(opts.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", decision.ResetAt.Format(time.RFC3339))

		if !decision.Allowed {
			c.Header("Retry-After", strconv.Itoa(decision.RetryAfter))
			logger.Log.Warn("rate limit exceeded", "ip", key, "path", c.FullPath())
			response.RateLimited(c, http.StatusTooManyRequests,
				"Too many requests. Please try again later.", decision.RetryAfter)
			c.Abort()
			return
		}

		c.Next()
	}
}

// clientIP extracts the key the limiter charges. Behind a reverse proxy the
// remote address is the proxy's, so deployments that set TRUST_PROXY use the
// first X-Forwarded-For entry instead.
func clientIP(c *gin.Context, trustProxy bool) string {
	if trustProxy {
		if xf := c.GetHeader("X-Forwarded-For"); xf != "" {
			return strings.TrimSpace(strings.Split(xf, ",")[0])
		}
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
