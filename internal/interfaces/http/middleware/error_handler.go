package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/easayliu/alist-aria2-metainfo/internal/shared/errors"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
	httputil "github.com/easayliu/alist-aria2-metainfo/pkg/utils"
)

// ErrorHandlerMiddleware 统一错误处理中间件
// 捕获handler中设置的错误,自动转换为合适的HTTP响应
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		if serviceErr, ok := apperrors.AsServiceError(err); ok {
			statusCode := mapErrorCodeToHTTPStatus(serviceErr.Code)
			if statusCode >= http.StatusInternalServerError {
				logger.Error("Request failed", "path", c.FullPath(), "requestID", GetRequestID(c), "error", err)
			}
			var details interface{}
			if len(serviceErr.Details) > 0 {
				details = serviceErr.Details
			}
			httputil.ErrorWithStatus(c, statusCode, string(serviceErr.Code), serviceErr.Message, details)
			return
		}

		// 未知错误不向外暴露细节
		logger.Error("Unhandled request error", "path", c.FullPath(), "requestID", GetRequestID(c), "error", err)
		httputil.ErrorWithStatus(c, http.StatusInternalServerError,
			string(apperrors.ErrorCodeInternalError), "Internal server error", nil)
	}
}

// mapErrorCodeToHTTPStatus 将业务错误码映射到HTTP状态码
func mapErrorCodeToHTTPStatus(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrorCodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.ErrorCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrorCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.ErrorCodeTimeout:
		return http.StatusRequestTimeout
	case apperrors.ErrorCodeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// RecoverMiddleware 恢复中间件 - 捕获panic并转换为500错误
func RecoverMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered", "path", c.Request.URL.Path, "requestID", GetRequestID(c), "panic", r)
				httputil.ErrorWithStatus(c, http.StatusInternalServerError,
					string(apperrors.ErrorCodeInternalError), "Internal server error", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}
