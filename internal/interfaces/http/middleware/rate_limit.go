package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/ratelimit"
	apperrors "github.com/easayliu/alist-aria2-metainfo/internal/shared/errors"
)

// RateLimitMiddleware 按客户端IP限流,需放在 ErrorHandlerMiddleware 之后
func RateLimitMiddleware(limiter *ratelimit.KeyedLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		_ = c.Error(apperrors.NewServiceError(apperrors.ErrorCodeRateLimit, "too many requests"))
		c.Abort()
	}
}
