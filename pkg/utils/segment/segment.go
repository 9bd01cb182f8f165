// Package segment 将混合中英文的片名切分为词元。
//
// 分隔符(空白、点、下划线、括号等)处断开,汉字与非汉字交界处断开,
// 数字跟随当前词元。
package segment

import (
	"unicode"
	"unicode/utf8"
)

type class int

const (
	classNone class = iota
	classHan
	classOther
	classNeutral
)

// Segmenter 单向的词元游标
type Segmenter struct {
	text string
	pos  int
}

// New 创建词元游标
func New(text string) *Segmenter {
	return &Segmenter{text: text}
}

// Next 返回下一个词元,耗尽时第二个返回值为 false
func (s *Segmenter) Next() (string, bool) {
	// 跳过分隔符
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !isSeparator(r) {
			break
		}
		s.pos += size
	}
	if s.pos >= len(s.text) {
		return "", false
	}

	start := s.pos
	current := classNone
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if isSeparator(r) {
			break
		}
		c := classify(r)
		if c != classNeutral {
			if current != classNone && c != current {
				break
			}
			current = c
		}
		s.pos += size
	}
	return s.text[start:s.pos], true
}

// Reset 回到开头
func (s *Segmenter) Reset() {
	s.pos = 0
}

// Tokens 一次性取出全部词元
func Tokens(text string) []string {
	var tokens []string
	seg := New(text)
	for {
		tok, ok := seg.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func classify(r rune) class {
	switch {
	case unicode.Is(unicode.Han, r):
		return classHan
	case unicode.IsDigit(r):
		return classNeutral
	default:
		return classOther
	}
}

func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '.', '_', '-', '/', '[', ']', '(', ')', '【', '】', '（', '）', '《', '》', '·', '，', ',', '、', '：', ':':
		return true
	}
	return false
}
