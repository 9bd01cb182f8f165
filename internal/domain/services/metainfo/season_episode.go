package metainfo

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	"github.com/easayliu/alist-aria2-metainfo/internal/domain/valueobjects"
)

// markerFamily 一类季集标记的正则族
type markerFamily struct {
	ranges  []*regexp.Regexp
	singles []*regexp.Regexp
	entire  *regexp.Regexp
}

var (
	seasonFamily = markerFamily{
		ranges:  []*regexp.Regexp{seasonRangeCNPattern, seasonSpanCNPattern, seasonRangeENPattern},
		singles: []*regexp.Regexp{seasonSingleCNPattern, seasonSingleENPattern},
		entire:  entireSeasonPattern,
	}
	episodeFamily = markerFamily{
		ranges:  []*regexp.Regexp{episodeRangeCNPattern, episodeRangeENPattern},
		singles: []*regexp.Regexp{episodeSingleCNPattern, episodeSingleENPattern},
		entire:  entireEpisodePattern,
	}
)

// numberSpan 一段季或集,end 为 nil 表示单个
type numberSpan struct {
	begin, end, total *int
}

// Repair 用原始标题和副标题重新识别季集,修正打标结果
// 副标题优先,没有命中时再看标题;规范化后的字符串不参与
func Repair(title, subtitle string, p *meta.ParsedMetadata) {
	sources := []string{
		strings.ReplaceAll(subtitle, "-", "."),
		strings.ReplaceAll(title, "-", "."),
	}

	if span, ok := seasonFamily.find(sources); ok {
		p.BeginSeason, p.EndSeason, p.TotalSeasons = span.begin, span.end, span.total
	}
	if span, ok := episodeFamily.find(sources); ok {
		p.BeginEpisode, p.EndEpisode, p.TotalEpisodes = span.begin, span.end, span.total
	}

	// 四位数的季号其实是年份
	if p.BeginSeason != nil && p.Year != "" {
		if year, err := strconv.Atoi(p.Year); err == nil && *p.BeginSeason == year {
			p.BeginSeason, p.EndSeason, p.TotalSeasons = nil, nil, nil
		}
	}

	clearDegenerateEnd(p.BeginSeason, &p.EndSeason)
	clearDegenerateEnd(p.BeginEpisode, &p.EndEpisode)

	if p.IsSeasonRange() {
		p.ClearEpisodes()
	}

	if p.BeginSeason != nil || p.BeginEpisode != nil {
		p.Type = valueobjects.MediaTypeTV
	}
}

// find 先找明确的季集标记,都没有时再找"全N季/共N集"
// 每一类都是副标题优先,先命中者生效,不跨来源合并
func (f markerFamily) find(sources []string) (numberSpan, bool) {
	for _, s := range sources {
		if span, ok := f.findExplicit(s); ok {
			return span, true
		}
	}
	for _, s := range sources {
		if span, ok := f.findEntire(s); ok {
			return span, true
		}
	}
	return numberSpan{}, false
}

func (f markerFamily) findExplicit(s string) (numberSpan, bool) {
	if s == "" {
		return numberSpan{}, false
	}
	for _, re := range f.ranges {
		if nums, ok := firstNumerals(re, s); ok && len(nums) >= 2 {
			return spanOf(nums[0], nums[1]), true
		}
	}
	for _, re := range f.singles {
		if nums, ok := firstNumerals(re, s); ok {
			return spanOf(nums[0], nums[0]), true
		}
	}
	return numberSpan{}, false
}

// findEntire 全N季: begin=1, end=N(N为1时为空), total=N
func (f markerFamily) findEntire(s string) (numberSpan, bool) {
	nums, ok := firstNumerals(f.entire, s)
	if !ok || nums[0] <= 0 {
		return numberSpan{}, false
	}
	n := nums[0]
	span := numberSpan{begin: meta.IntPtr(1), total: meta.IntPtr(n)}
	if n != 1 {
		span.end = meta.IntPtr(n)
	}
	return span, true
}

func spanOf(begin, end int) numberSpan {
	span := numberSpan{begin: meta.IntPtr(begin), total: meta.IntPtr(1)}
	if end > begin {
		span.end = meta.IntPtr(end)
		span.total = meta.IntPtr(end - begin + 1)
	}
	return span
}

// firstNumerals 返回第一个数字全部可转换的匹配
func firstNumerals(re *regexp.Regexp, s string) ([]int, bool) {
	for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
		if nums, ok := numeralGroups(s, m); ok {
			return nums, true
		}
	}
	return nil, false
}

// clearDegenerateEnd end 不大于 begin 时清空
func clearDegenerateEnd(begin *int, end **int) {
	if *end == nil {
		return
	}
	if begin == nil || **end <= *begin {
		*end = nil
	}
}
