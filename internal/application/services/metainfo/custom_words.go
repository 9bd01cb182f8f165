package metainfo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
)

type ruleKind int

const (
	ruleIgnore ruleKind = iota
	ruleReplace
	ruleOffset
	ruleReplaceOffset
)

// 规则分隔符
const (
	replaceSep  = " => "
	anchorSep   = " <> "
	offsetSep   = " >> "
	combinedSep = " && "
)

// 集数偏移表达式: EP+N、EP-N、N*EP、EP*N
var offsetExprPattern = regexp.MustCompile(`^(?:(\d+)\s*\*\s*)?EP(?:\s*\*\s*(\d+))?(?:\s*([+-])\s*(\d+))?$`)

var episodeDigitsPattern = regexp.MustCompile(`\d+`)

// episodeOffset 集数偏移: ep*mul + add
type episodeOffset struct {
	front, back *regexp.Regexp
	mul, add    int
}

type wordRule struct {
	raw         string
	kind        ruleKind
	pattern     *regexp.Regexp
	replacement string
	offset      *episodeOffset
}

// CustomWords 自定义识别词,在规范化之前作用于原始标题
//
//	屏蔽词        word
//	替换          old => new
//	集数偏移      front <> back >> EP+N
//	替换后偏移    old => new && front <> back >> EP+N
type CustomWords struct {
	rules         []wordRule
	customization []*regexp.Regexp
}

// CompileCustomWords 编译规则,格式错误或正则无效的行跳过并记录警告
// customization 为自定义占位符正则,命中的文本以 @ 连接
func CompileCustomWords(lines, customization []string) *CustomWords {
	w := &CustomWords{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rule, err := parseRule(line)
		if err != nil {
			logger.Warn("skip invalid custom word", "rule", line, "error", err)
			continue
		}
		w.rules = append(w.rules, rule)
	}

	for _, expr := range customization {
		if expr = strings.TrimSpace(expr); expr == "" {
			continue
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			logger.Warn("skip invalid customization", "pattern", expr, "error", err)
			continue
		}
		w.customization = append(w.customization, re)
	}
	return w
}

func parseRule(line string) (wordRule, error) {
	rule := wordRule{raw: line}

	if left, right, ok := strings.Cut(line, combinedSep); ok {
		replace, err := parseReplace(left)
		if err != nil {
			return rule, err
		}
		offset, err := parseOffset(right)
		if err != nil {
			return rule, err
		}
		rule.kind = ruleReplaceOffset
		rule.pattern, rule.replacement, rule.offset = replace.pattern, replace.replacement, offset
		return rule, nil
	}

	switch {
	case strings.Contains(line, replaceSep):
		replace, err := parseReplace(line)
		if err != nil {
			return rule, err
		}
		rule.kind = ruleReplace
		rule.pattern, rule.replacement = replace.pattern, replace.replacement
	case strings.Contains(line, anchorSep) && strings.Contains(line, offsetSep):
		offset, err := parseOffset(line)
		if err != nil {
			return rule, err
		}
		rule.kind, rule.offset = ruleOffset, offset
	default:
		re, err := regexp.Compile(line)
		if err != nil {
			return rule, fmt.Errorf("invalid pattern: %w", err)
		}
		rule.kind, rule.pattern = ruleIgnore, re
	}
	return rule, nil
}

func parseReplace(s string) (wordRule, error) {
	old, repl, ok := strings.Cut(s, replaceSep)
	old = strings.TrimSpace(old)
	if !ok || old == "" {
		return wordRule{}, fmt.Errorf("replace rule needs 'old => new'")
	}
	re, err := regexp.Compile(old)
	if err != nil {
		return wordRule{}, fmt.Errorf("invalid pattern: %w", err)
	}
	return wordRule{pattern: re, replacement: strings.TrimSpace(repl)}, nil
}

func parseOffset(s string) (*episodeOffset, error) {
	anchors, expr, ok := strings.Cut(s, offsetSep)
	if !ok {
		return nil, fmt.Errorf("offset rule needs '>> EP+N'")
	}
	front, back, ok := strings.Cut(anchors, anchorSep)
	if !ok {
		return nil, fmt.Errorf("offset rule needs 'front <> back'")
	}

	offset := &episodeOffset{mul: 1}
	var err error
	if offset.front, err = compileAnchor(front); err != nil {
		return nil, err
	}
	if offset.back, err = compileAnchor(back); err != nil {
		return nil, err
	}

	m := offsetExprPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(expr)))
	if m == nil {
		return nil, fmt.Errorf("invalid offset expression: %s", expr)
	}
	for _, mul := range m[1:3] {
		if mul != "" {
			offset.mul, _ = strconv.Atoi(mul)
		}
	}
	if m[4] != "" {
		offset.add, _ = strconv.Atoi(m[4])
		if m[3] == "-" {
			offset.add = -offset.add
		}
	}
	return offset, nil
}

// compileAnchor 空锚点表示字符串的开头或结尾
func compileAnchor(s string) (*regexp.Regexp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	re, err := regexp.Compile(s)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor: %w", err)
	}
	return re, nil
}

// Len 有效规则数量
func (w *CustomWords) Len() int {
	return len(w.rules)
}

// Apply 按配置顺序应用规则,返回处理后的标题和命中的规则
func (w *CustomWords) Apply(title string) (string, []string) {
	applied := []string{}
	for _, rule := range w.rules {
		next, ok := rule.apply(title)
		if !ok {
			continue
		}
		logger.Debug("custom word applied", "rule", rule.raw, "before", title, "after", next)
		title = next
		applied = append(applied, rule.raw)
	}
	return title, applied
}

// Customization 标题中命中的自定义占位符,以 @ 连接
func (w *CustomWords) Customization(title string) string {
	var found []string
	seen := map[string]bool{}
	for _, re := range w.customization {
		for _, m := range re.FindAllString(title, -1) {
			if m = strings.TrimSpace(m); m != "" && !seen[m] {
				seen[m] = true
				found = append(found, m)
			}
		}
	}
	return strings.Join(found, "@")
}

func (r wordRule) apply(title string) (string, bool) {
	switch r.kind {
	case ruleIgnore:
		next := r.pattern.ReplaceAllString(title, "")
		return strings.TrimSpace(next), next != title
	case ruleReplace:
		next := r.pattern.ReplaceAllString(title, r.replacement)
		return next, next != title
	case ruleOffset:
		return r.offset.apply(title)
	case ruleReplaceOffset:
		if !r.pattern.MatchString(title) {
			return title, false
		}
		next := r.pattern.ReplaceAllString(title, r.replacement)
		if shifted, ok := r.offset.apply(next); ok {
			next = shifted
		}
		return next, true
	}
	return title, false
}

// apply 在 front 与 back 之间找第一个数字并重新计算,保持原有的补零宽度
func (o *episodeOffset) apply(title string) (string, bool) {
	start, end := 0, len(title)
	if o.front != nil {
		loc := o.front.FindStringIndex(title)
		if loc == nil {
			return title, false
		}
		start = loc[1]
	}
	if o.back != nil {
		loc := o.back.FindStringIndex(title[start:])
		if loc == nil {
			return title, false
		}
		end = start + loc[0]
	}

	loc := episodeDigitsPattern.FindStringIndex(title[start:end])
	if loc == nil {
		return title, false
	}
	numStart, numEnd := start+loc[0], start+loc[1]
	digits := title[numStart:numEnd]
	ep, err := strconv.Atoi(digits)
	if err != nil {
		return title, false
	}

	shifted := ep*o.mul + o.add
	if shifted <= 0 {
		logger.Debug("episode offset out of range", "episode", ep, "result", shifted)
		return title, false
	}
	return title[:numStart] + fmt.Sprintf("%0*d", len(digits), shifted) + title[numEnd:], true
}
