package meta

import (
	"fmt"
	"strings"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/valueobjects"
)

// ParsedMetadata 一次解析的最终结果
// 可选的数值字段用指针表示,序列化时缺失为 null,字符串缺失为空串,键永不省略
type ParsedMetadata struct {
	// ========== 类型 ==========
	Type      valueobjects.MediaType `json:"type"`       // movie | tv
	MediaType string                 `json:"media_type"` // 打标器给出的原始类型

	// ========== 名称 ==========
	CNName string `json:"cn_name"`
	ENName string `json:"en_name"`
	Year   string `json:"year"`

	// ========== 季集 ==========
	BeginSeason   *int   `json:"begin_season"`
	EndSeason     *int   `json:"end_season"`
	TotalSeasons  *int   `json:"total_seasons"`
	BeginEpisode  *int   `json:"begin_episode"`
	EndEpisode    *int   `json:"end_episode"`
	TotalEpisodes *int   `json:"total_episodes"`
	Part          string `json:"part"`

	// ========== 资源 ==========
	Edition        string `json:"edition"`
	ResourceType   string `json:"resource_type"`
	ResourceTeam   string `json:"resource_team"`
	ResourceEffect string `json:"resource_effect"`
	ResourcePix    string `json:"resource_pix"`
	VideoEncode    string `json:"video_encode"`
	AudioEncode    string `json:"audio_encode"`
	WebSource      string `json:"web_source"`
	Customization  string `json:"customization"`

	// ========== 媒体探测(仅在开启时填充) ==========
	ColorSpace  string `json:"color_space"`
	DolbyVision bool   `json:"dolby_vision"`

	// ========== 溯源 ==========
	OrgString    string   `json:"org_string"`
	RevString    string   `json:"rev_string"`
	AppliedWords []string `json:"apply_words"`
}

// NewParsedMetadata 空结果,类型默认为电影
func NewParsedMetadata(org string) *ParsedMetadata {
	return &ParsedMetadata{
		Type:         valueobjects.MediaTypeMovie,
		OrgString:    org,
		AppliedWords: []string{},
	}
}

// IntPtr 返回 n 的指针
func IntPtr(n int) *int {
	return &n
}

// IsSeasonRange 是否跨越多季
func (p *ParsedMetadata) IsSeasonRange() bool {
	return p.BeginSeason != nil && p.EndSeason != nil && *p.BeginSeason != *p.EndSeason
}

// ClearEpisodes 清空集数信息
func (p *ParsedMetadata) ClearEpisodes() {
	p.BeginEpisode, p.EndEpisode, p.TotalEpisodes = nil, nil, nil
}

// Name 优先中文名
func (p *ParsedMetadata) Name() string {
	if p.CNName != "" {
		return p.CNName
	}
	return p.ENName
}

// SeasonEpisode 格式化季集,如 S01E05、S01-S03、E01-E12
func (p *ParsedMetadata) SeasonEpisode() string {
	var b strings.Builder
	if p.BeginSeason != nil {
		fmt.Fprintf(&b, "S%02d", *p.BeginSeason)
		if p.EndSeason != nil {
			fmt.Fprintf(&b, "-S%02d", *p.EndSeason)
		}
	}
	if p.BeginEpisode != nil {
		fmt.Fprintf(&b, "E%02d", *p.BeginEpisode)
		if p.EndEpisode != nil {
			fmt.Fprintf(&b, "-E%02d", *p.EndEpisode)
		}
	}
	return b.String()
}

// Summary 单行摘要,用于日志和通知
func (p *ParsedMetadata) Summary() string {
	parts := []string{}
	if name := p.Name(); name != "" {
		parts = append(parts, name)
	}
	for _, s := range []string{p.Year, p.SeasonEpisode(), p.ResourcePix, p.ResourceType, p.VideoEncode, p.ResourceTeam} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return p.Type.Label()
	}
	return fmt.Sprintf("[%s] %s", p.Type.Label(), strings.Join(parts, " "))
}
