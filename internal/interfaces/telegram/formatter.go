package telegram

import (
	"fmt"
	"strings"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	strutil "github.com/easayliu/alist-aria2-metainfo/pkg/utils/string"
)

// FormatParseResult 识别结果的 HTML 消息,空字段不展示
func FormatParseResult(p *meta.ParsedMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 <b>识别结果</b> (%s)\n", p.Type.Label())
	fmt.Fprintf(&b, "<code>%s</code>\n\n", strutil.EscapeHTML(p.OrgString))

	fields := []struct {
		label string
		value string
	}{
		{"中文名", p.CNName},
		{"英文名", p.ENName},
		{"年份", p.Year},
		{"季集", p.SeasonEpisode()},
		{"分集", p.Part},
		{"版本", p.Edition},
		{"来源", p.ResourceType},
		{"特效", p.ResourceEffect},
		{"分辨率", p.ResourcePix},
		{"视频编码", p.VideoEncode},
		{"音频编码", p.AudioEncode},
		{"流媒体", p.WebSource},
		{"制作组", p.ResourceTeam},
		{"色彩", p.ColorSpace},
		{"自定义占位符", p.Customization},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(&b, "<b>%s:</b> %s\n", f.label, strutil.EscapeHTML(f.value))
		}
	}
	if p.TotalEpisodes != nil && *p.TotalEpisodes > 1 {
		fmt.Fprintf(&b, "<b>总集数:</b> %d\n", *p.TotalEpisodes)
	}
	if len(p.AppliedWords) > 0 {
		fmt.Fprintf(&b, "<b>识别词:</b> %s\n", strutil.EscapeHTML(strings.Join(p.AppliedWords, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}
