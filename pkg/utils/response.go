package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CodeOK 成功响应的业务码
const CodeOK = "OK"

// Response 统一响应包
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeOK,
		Message: "success",
		Data:    data,
	})
}

// ErrorWithStatus 带HTTP状态码的错误响应,data 携带错误详情
func ErrorWithStatus(c *gin.Context, httpStatus int, code, message string, details interface{}) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Data:    details,
	})
}
