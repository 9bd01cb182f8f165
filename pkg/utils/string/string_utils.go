package strutil

import (
	"strconv"
	"strings"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

// EscapeHTML 转义Telegram HTML消息中的特殊字符
func EscapeHTML(text string) string {
	return htmlReplacer.Replace(text)
}

// FormatFileSize 格式化文件大小
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return strconv.FormatInt(bytes, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return strconv.FormatFloat(float64(bytes)/float64(div), 'f', 1, 64) + " " + "KMGTPE"[exp:exp+1] + "B"
}

// CollapseDots 含点的分隔符序列合并为一个点,并去掉首尾的点
func CollapseDots(s string) string {
	s = DotRunPattern.ReplaceAllString(s, ".")
	return strings.Trim(s, ".")
}
