package metainfo

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/width"

	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
	strutil "github.com/easayliu/alist-aria2-metainfo/pkg/utils/string"
)

// rewriteStep 单步改写,返回改写结果以及是否发生变化
type rewriteStep struct {
	name  string
	apply func(string) (string, bool)
}

// normalized 规范化结果,附带被移到末尾的字幕组
type normalized struct {
	text  string
	group string
}

// Normalize 规范化标题,使其更易被打标器识别
// 总是返回结果,任何一步无法处理都保持该步输入不变
func Normalize(raw string) string {
	return normalize(raw).text
}

func normalize(raw string) normalized {
	var out normalized

	steps := []rewriteStep{
		{"illegal_chars", stripIllegalChars},
		{"unify_brackets", unifyBrackets},
		{"relocate_group", func(s string) (string, bool) {
			rest, group, ok := relocateLeadingGroup(s)
			if ok {
				out.group = group
			}
			return rest, ok
		}},
		{"decorative_tags", replaceWith(decorativeTagPattern, "")},
		{"bracket_number", replaceWith(bracketNumberPattern, "[E$1]")},
		{"leading_bracket", func(s string) (string, bool) {
			// 已移走字幕组时,开头的方括号是片名
			if out.group != "" {
				return s, false
			}
			return dropLeadingBracket(s)
		}},
		{"brackets", replaceBrackets},
		{"season_episode", rewriteMarkers},
		{"year_range", collapseYearRange},
		{"collapse_dots", collapseDots},
		{"noise", stripNoise},
		{"final", finalize},
	}

	s := raw
	for _, step := range steps {
		next, changed := step.apply(s)
		if changed {
			logger.Debug("normalize step applied", "step", step.name, "before", s, "after", next)
			s = next
		}
	}
	out.text = s
	return out
}

func replaceWith(re *regexp.Regexp, repl string) func(string) (string, bool) {
	return func(s string) (string, bool) {
		next := re.ReplaceAllString(s, repl)
		return next, next != s
	}
}

func stripIllegalChars(s string) (string, bool) {
	next := trimMediaExt(illegalCharsPattern.ReplaceAllString(s, ""))
	return next, next != s
}

// trimMediaExt 去掉结尾的媒体扩展名,连续的扩展名和其后的分隔符一并去掉
func trimMediaExt(s string) string {
	for {
		trimmed := strings.TrimRight(s, " ._")
		next := mediaExtPattern.ReplaceAllString(trimmed, "")
		if next == trimmed {
			return s
		}
		s = next
	}
}

func unifyBrackets(s string) (string, bool) {
	next := strings.ReplaceAll(s, "-", ".")
	next = strings.NewReplacer("【", "[", "】", "]").Replace(next)
	next = width.Fold.String(next)
	return next, next != s
}

func dropLeadingBracket(s string) (string, bool) {
	loc := leadingBracketPattern.FindStringIndex(s)
	if loc == nil {
		return s, false
	}
	return s[loc[1]:], true
}

func replaceBrackets(s string) (string, bool) {
	next := strings.NewReplacer("[", ".", "]", ".").Replace(s)
	return next, next != s
}

// rewriteMarkers 季、集标记交替改写直到不再变化
// 改写会在标记两侧补点,可能让相邻的另一类标记变得可识别
func rewriteMarkers(s string) (string, bool) {
	orig := s
	for i := 0; i < 4; i++ {
		next, seasonChanged := rewriteSeason(s)
		next, episodeChanged := rewriteEpisode(next)
		s = next
		if !seasonChanged && !episodeChanged {
			break
		}
	}
	return s, s != orig
}

func rewriteSeason(s string) (string, bool) {
	return rewriteMarker(s, "S",
		[]*regexp.Regexp{seasonRangeCNPattern, seasonSpanCNPattern, seasonRangeENPattern},
		[]*regexp.Regexp{seasonSingleCNPattern, seasonSingleENPattern})
}

func rewriteEpisode(s string) (string, bool) {
	return rewriteMarker(s, "E",
		[]*regexp.Regexp{episodeRangeCNPattern, episodeRangeENPattern},
		[]*regexp.Regexp{episodeSingleCNPattern, episodeSingleENPattern})
}

// rewriteMarker 先改写范围,再改写单个标记
// 范围输出形如 .S01-S03.,其中的 - 不属于分隔符,单个标记的正则不会再次命中
func rewriteMarker(s, prefix string, ranges, singles []*regexp.Regexp) (string, bool) {
	orig := s
	for _, re := range ranges {
		s = replaceNumerals(s, re, func(nums []int) string {
			return fmt.Sprintf(".%s%02d-%s%02d.", prefix, nums[0], prefix, nums[1])
		})
	}
	for _, re := range singles {
		s = replaceNumerals(s, re, func(nums []int) string {
			return fmt.Sprintf(".%s%02d.", prefix, nums[0])
		})
	}
	return s, s != orig
}

// replaceNumerals 将匹配中的数字分组转换后交给 format 生成替换文本
// 分组里的分隔符(以 ^|sep 开头或结尾的分组)不参与转换;
// 任一数字无法转换时保留该处原文
func replaceNumerals(s string, re *regexp.Regexp, format func([]int) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		nums, ok := numeralGroups(s, m)
		if !ok {
			logger.Debug("numeral conversion skipped", "text", s[m[0]:m[1]])
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(format(nums))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func numeralGroups(s string, m []int) ([]int, bool) {
	var nums []int
	for g := 1; g*2+1 < len(m); g++ {
		start, end := m[g*2], m[g*2+1]
		if start < 0 {
			continue
		}
		text := s[start:end]
		if isSeparatorGroup(text) {
			continue
		}
		n, err := strutil.ParseNumeral(text)
		if err != nil {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, len(nums) > 0
}

func isSeparatorGroup(text string) bool {
	return text == "" || strings.Trim(text, ".\t\n\v\f\r _[]()【】") == ""
}

// collapseYearRange 年份区间取较大的年份,连续多个年份逐对合并
func collapseYearRange(s string) (string, bool) {
	orig := s
	for {
		next := yearRangePattern.ReplaceAllStringFunc(s, func(match string) string {
			sub := yearRangePattern.FindStringSubmatch(match)
			year := sub[2]
			if sub[3] > year {
				year = sub[3]
			}
			return sub[1] + year + sub[4]
		})
		if next == s {
			return s, s != orig
		}
		s = next
	}
}

func collapseDots(s string) (string, bool) {
	next := strutil.CollapseDots(s)
	return next, next != s
}

func stripNoise(s string) (string, bool) {
	next := seasonalAnimePattern.ReplaceAllString(s, "")
	next = multiAudioPattern.ReplaceAllString(next, "")
	next = yearRangeNoise.ReplaceAllString(next, "")
	// 大小和日期的正则会吃掉两侧的边界字符,相邻的匹配需要多轮才能删干净
	next = untilStable(next, func(v string) string {
		return strutil.FileSizePattern.ReplaceAllString(v, ".")
	})
	next = untilStable(next, func(v string) string {
		return removeGroup(strutil.DatePattern, v, 1)
	})
	return next, next != s
}

func untilStable(s string, fn func(string) string) string {
	for {
		next := fn(s)
		if next == s {
			return s
		}
		s = next
	}
}

// removeGroup 删除每个匹配中的指定分组,保留分组两侧的边界字符
func removeGroup(re *regexp.Regexp, s string, group int) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[group*2], m[group*2+1]
		b.WriteString(s[last:start])
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

func finalize(s string) (string, bool) {
	next := strutil.CollapseDots(strings.Trim(strings.ReplaceAll(s, "-", "."), ". _"))
	// 前面的步骤可能让扩展名重新落到结尾
	next = strings.Trim(trimMediaExt(next), ". _")
	return next, next != s
}
