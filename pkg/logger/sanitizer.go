package logger

import (
	"strings"
)

// 键名包含以下片段时对值脱敏
var sensitiveKeys = []string{
	"token", "password", "passwd", "pwd",
	"secret", "api_key", "apikey", "api-key",
	"authorization", "auth",
}

// MaskToken 保留前4后4位,中间替换为星号;不足8位整体掩码
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	n := len(token)
	if n < 8 {
		return "***"
	}
	return token[:4] + strings.Repeat("*", n-8) + token[n-4:]
}

// IsSensitiveKey 判断键名是否为敏感字段
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, sk := range sensitiveKeys {
		if strings.Contains(lower, sk) {
			return true
		}
	}
	return false
}

// SanitizeValue 按键名脱敏,非字符串值统一掩码
func SanitizeValue(key string, value interface{}) interface{} {
	if !IsSensitiveKey(key) {
		return value
	}
	if s, ok := value.(string); ok {
		return MaskToken(s)
	}
	return "***MASKED***"
}

// SanitizeArgs 处理slog风格的 key, value, key, value... 参数
func SanitizeArgs(args ...any) []any {
	if len(args) == 0 {
		return args
	}

	result := make([]any, len(args))
	copy(result, args)
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			result[i+1] = SanitizeValue(key, args[i+1])
		}
	}
	return result
}
