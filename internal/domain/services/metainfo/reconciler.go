package metainfo

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	"github.com/easayliu/alist-aria2-metainfo/internal/domain/valueobjects"
	strutil "github.com/easayliu/alist-aria2-metainfo/pkg/utils/string"
)

// 流媒体平台名称归一
var streamingServiceReplacements = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)^amazon(?:[.\s_]prime)?(?:[.\s_]video)?$`), "AMZN"},
	{regexp.MustCompile(`(?i)^disney(?:\+|[.\s_]plus)?$`), "DSNP"},
	{regexp.MustCompile(`(?i)^hbo[.\s_]?max$`), "HMAX"},
	{regexp.MustCompile(`(?i)^netflix$`), "NF"},
	{regexp.MustCompile(`(?i)^apple[.\s_]?tv\+?$`), "ATVP"},
}

var screenSizePattern = regexp.MustCompile(`^(\d{3,4})[pPiI]$`)

// coalesce 按优先级合并同一字段的多个来源
// 恰有一个来源是列表时取该列表;多个来源都是列表时取排在前面的;
// 否则取第一个非空标量
func coalesce(values ...meta.TagValue) meta.TagValue {
	for _, v := range values {
		if v.IsList() {
			return v
		}
	}
	for _, v := range values {
		if v.IsScalar() {
			return v
		}
	}
	return meta.Absent()
}

// joinNonEmpty 主值与修饰值用空格连接
func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// Reconcile 合并标题与副标题的打标结果
func Reconcile(title, subtitle meta.MediaItem, p *meta.ParsedMetadata) {
	mediaType := coalesce(title.Main.MediaType, subtitle.Main.MediaType).Scalar()
	p.MediaType = mediaType
	if mediaType != "" {
		p.Type = valueobjects.MediaTypeFromTag(mediaType)
	}

	resolveNames(coalesce(title.Main.Title, subtitle.Main.Title).String(), p)

	if p.Year == "" {
		p.Year = coalesce(title.Main.Year, subtitle.Main.Year).Scalar()
	}

	if p.Type == valueobjects.MediaTypeTV {
		season := coalesce(title.Episode.Season, subtitle.Episode.Season)
		p.BeginSeason, p.EndSeason, p.TotalSeasons = numberRange(season)

		episode := coalesce(title.Episode.Episode, subtitle.Episode.Episode)
		p.BeginEpisode, p.EndEpisode, p.TotalEpisodes = numberRange(episode)
	}
	p.Part = coalesce(title.Episode.Part, subtitle.Episode.Part).String()

	p.WebSource = normalizeStreamingService(
		coalesce(title.Main.StreamingService, subtitle.Main.StreamingService).String())
	source := normalizeSource(coalesce(title.Video.Source, subtitle.Video.Source).String())
	p.ResourceType = strings.ReplaceAll(joinNonEmpty(p.WebSource, source), "+", "")

	p.ResourceEffect = coalesce(title.Other.Other, subtitle.Other.Other).String()
	p.ResourcePix = normalizeScreenSize(coalesce(title.Video.ScreenSize, subtitle.Video.ScreenSize).Scalar())
	p.Edition = coalesce(title.Other.Edition, subtitle.Other.Edition).String()

	p.VideoEncode = joinNonEmpty(
		coalesce(title.Video.VideoCodec, subtitle.Video.VideoCodec).String(),
		coalesce(title.Video.ColorDepth, subtitle.Video.ColorDepth).String())
	p.AudioEncode = joinNonEmpty(
		coalesce(title.Audio.AudioCodec, subtitle.Audio.AudioCodec).String(),
		coalesce(title.Audio.AudioChannels, subtitle.Audio.AudioChannels).String())

	p.ResourceTeam = coalesce(title.Main.ReleaseGroup, subtitle.Main.ReleaseGroup).String()
}

// resolveNames 外部已提供中英文名时不覆盖
func resolveNames(name string, p *meta.ParsedMetadata) {
	if p.CNName != "" && p.ENName != "" {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	switch {
	case strutil.IsEnglishMediaName(name):
		p.ENName = name
	case strutil.IsAllChinese(name):
		p.CNName = name
	default:
		cn, en := SplitMixedName(name)
		if cn != "" {
			p.CNName = cn
		}
		if en != "" {
			p.ENName = en
		}
	}
}

// numberRange 列表按数值排序后取首尾与数量,标量视为单个
func numberRange(v meta.TagValue) (begin, end, total *int) {
	var nums []int
	for _, item := range v.List() {
		if n, err := strconv.Atoi(item); err == nil {
			nums = append(nums, n)
		}
	}
	if len(nums) == 0 {
		return nil, nil, nil
	}

	sort.Ints(nums)
	begin = meta.IntPtr(nums[0])
	if last := nums[len(nums)-1]; last != nums[0] {
		end = meta.IntPtr(last)
	}
	total = meta.IntPtr(len(nums))
	return begin, end, total
}

func normalizeSource(source string) string {
	if strings.EqualFold(strings.TrimSpace(source), "web") {
		return "WEB-DL"
	}
	return source
}

func normalizeStreamingService(service string) string {
	service = strings.TrimSpace(service)
	for _, r := range streamingServiceReplacements {
		if r.re.MatchString(service) {
			return r.repl
		}
	}
	return service
}

func normalizeScreenSize(size string) string {
	if m := screenSizePattern.FindStringSubmatch(size); m != nil {
		return m[1] + strings.ToLower(size[len(m[1]):])
	}
	return size
}
