package strutil

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// ErrNotNumeral 输入无法解析为数字
var ErrNotNumeral = errors.New("not a numeral")

var chineseDigits = map[rune]int{
	'零': 0, '〇': 0, '一': 1, '二': 2, '两': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

var chineseUnits = map[rune]int{
	'十': 10, '百': 100, '千': 1000,
}

// NumeralChars 正则字符类片段,匹配可被 ToArabic 处理的字符
const NumeralChars = `零〇一二两三四五六七八九十百千万\d０-９`

// ToArabic 智能转换:阿拉伯数字字符串去前导零,中文数字转为阿拉伯数字
// 例: "03" -> "3", "十二" -> "12", "二〇二四" -> "2024"
func ToArabic(s string) (string, error) {
	n, err := ParseNumeral(s)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// ParseNumeral 解析阿拉伯数字、全角数字或中文数字
func ParseNumeral(s string) (int, error) {
	s = strings.TrimSpace(width.Fold.String(s))
	if s == "" {
		return 0, ErrNotNumeral
	}

	if isASCIIDigits(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, ErrNotNumeral
		}
		return n, nil
	}

	if !strings.ContainsAny(s, "十百千万") {
		return parsePositional(s)
	}
	return parseWithUnits(s)
}

// parsePositional 逐位读取,如 "二〇二四"
func parsePositional(s string) (int, error) {
	n := 0
	for _, r := range s {
		d, ok := digitValue(r)
		if !ok {
			return 0, ErrNotNumeral
		}
		n = n*10 + d
		if n > 1e9 {
			return 0, ErrNotNumeral
		}
	}
	return n, nil
}

// parseWithUnits 处理带位值的中文数字,如 "一百零五"、"十二"、"三万"
func parseWithUnits(s string) (int, error) {
	total, section, number := 0, 0, 0
	pendingDigit := false

	for _, r := range s {
		if d, ok := digitValue(r); ok {
			// "二三十" 这类连续数字无法确定位值
			if pendingDigit && number != 0 {
				return 0, ErrNotNumeral
			}
			number = d
			pendingDigit = true
			continue
		}

		if unit, ok := chineseUnits[r]; ok {
			if !pendingDigit {
				if section != 0 {
					return 0, ErrNotNumeral
				}
				number = 1
			}
			section += number * unit
			number, pendingDigit = 0, false
			continue
		}

		if r == '万' {
			section += number
			if section == 0 {
				return 0, ErrNotNumeral
			}
			total += section * 10000
			section, number, pendingDigit = 0, 0, false
			continue
		}

		return 0, ErrNotNumeral
	}

	return total + section + number, nil
}

func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	d, ok := chineseDigits[r]
	return d, ok
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
