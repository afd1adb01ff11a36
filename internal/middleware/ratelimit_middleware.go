package middleware

import (
	"context"
	"net/http"
	"strconv"

	"paperstash/internal/redis"
	"paperstash/internal/services"
	"paperstash/internal/transport/httpdto"
	"paperstash/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UploadLimiter interface {
	AllowUpload(ctx context.Context, userID string) (*redis.RateLimitResult, error)
}

// UploadRateLimitMiddleware limits upload requests per user. It must run
// after AuthMiddleware. Limiter outages fail open.
func UploadRateLimitMiddleware(limiter UploadLimiter, l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := services.UserIDFromContext(c.Request.Context())
		if !ok {
			c.Next()
			return
		}

		result, err := limiter.AllowUpload(c.Request.Context(), userID.String())
		if err != nil {
			if l != nil {
				l.WithContext(c.Request.Context()).Warnf("upload rate limit check failed: %v", err)
			}
			c.Next()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("upload rate limit exceeded", "RATE_LIMITED"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
