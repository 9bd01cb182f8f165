package metainfo

import "regexp"

var (
	// 【组名】【片名】
	animeDoubleBracketPattern = regexp.MustCompile(`【[^】]+】\s*【`)
	// Show - 01
	animeDashNumberPattern = regexp.MustCompile(`[\s_]-[\s_]\d{1,4}(?:[vV]\d)?(?:[\s_\[.]|$)`)
	// 英文季集标记
	westernMarkerPattern = regexp.MustCompile(`(?i)(?:^|[^a-z])(?:S\d{1,4}(?:E\d{1,4})?|EP?\d{1,4})(?:[^a-z\d]|$)`)
	// 中文季集标记
	chineseMarkerPattern = regexp.MustCompile(`第\s*` + num + `\s*[季集话話期]`)
	// [组名][片名][01]
	animeBracketNumberPattern = regexp.MustCompile(`\[[^\]]+\].*\[(?:E|EP)?\d{1,4}(?:[vV]\d)?\]`)
)

// animeCheck 判定结果:命中时返回 true 或 false,未命中继续下一条
type animeCheck struct {
	re     *regexp.Regexp
	result bool
}

// 顺序即优先级,季集标记排在括号数字之前,命中即否决
var animeChecks = []animeCheck{
	{animeDoubleBracketPattern, true},
	{animeDashNumberPattern, true},
	{westernMarkerPattern, false},
	{chineseMarkerPattern, false},
	{animeBracketNumberPattern, true},
}

// IsAnime 按字幕组的命名习惯判断是否为动画
func IsAnime(name string) bool {
	for _, check := range animeChecks {
		if check.re.MatchString(name) {
			return check.result
		}
	}
	return false
}
