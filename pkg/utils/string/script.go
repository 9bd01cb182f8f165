package strutil

import (
	"regexp"
	"strings"
	"unicode"
)

// 英文片名形态:字母开头,由字母数字和常见标点组成
var englishNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\s.,:;'!?&()\-_+]*$`)

// IsHan 是否为汉字
func IsHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// IsAllChinese 去掉空白和数字后全部为汉字
func IsAllChinese(s string) bool {
	seen := false
	for _, r := range s {
		switch {
		case IsHan(r):
			seen = true
		case unicode.IsSpace(r), unicode.IsDigit(r), r == '·', r == '：', r == ':':
		default:
			return false
		}
	}
	return seen
}

// IsEnglishMediaName 判断是否为纯英文片名
func IsEnglishMediaName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || !englishNamePattern.MatchString(s) {
		return false
	}
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
