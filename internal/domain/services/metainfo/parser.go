// Package metainfo 从发布名推断媒体元信息。
//
// 流程:规范化 -> 字幕组移位 -> 标题/副标题各打标一次 -> 字段合并
// -> 基于原始字符串的季集修正 -> 可选的视频探测补全。
package metainfo

import (
	"context"
	"strings"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
)

// Tagger 通用打标器,任何输入都不应报错,无法识别时返回空结果
type Tagger interface {
	Tag(text string) meta.Tags
}

// Prober 视频探测,失败返回 nil
type Prober interface {
	Probe(ctx context.Context, path string) *meta.ProbeResult
}

// Input 单次解析的输入
type Input struct {
	Title    string
	Subtitle string

	// 外部已知的中英文名,两者都提供时不再从打标结果推断
	CNName string
	ENName string

	// 自定义识别词处理的结果
	AppliedWords  []string
	Customization string

	// 视频探测,Enrich 为 true 且 Path 非空时执行
	Path   string
	Enrich bool
}

// Parser 元信息解析器,无状态,可并发使用
type Parser struct {
	tagger Tagger
	prober Prober
}

// NewParser 创建解析器,prober 可为 nil
func NewParser(tagger Tagger, prober Prober) *Parser {
	return &Parser{tagger: tagger, prober: prober}
}

// Parse 解析发布名,总是返回结果;没有任何信号时类型为电影、其余字段为空
func (p *Parser) Parse(ctx context.Context, in Input) *meta.ParsedMetadata {
	result := meta.NewParsedMetadata(in.Title)
	result.CNName = in.CNName
	result.ENName = in.ENName
	result.Customization = in.Customization
	if len(in.AppliedWords) > 0 {
		result.AppliedWords = append(result.AppliedWords, in.AppliedWords...)
	}

	title := in.Title
	if IsAnime(title) {
		title = animeEpisodePattern.ReplaceAllString(title, " E$1$2")
	}

	norm := normalize(title)
	result.RevString = norm.text

	titleItem := p.tag(norm.text)
	subtitleItem := p.tag(Normalize(in.Subtitle))
	Reconcile(titleItem, subtitleItem, result)

	group := norm.group
	if orig := originalGroup(in.Title); orig != "" && groupKey(orig) == groupKey(group) {
		group = orig
	}
	switch {
	case result.ResourceTeam == "":
		result.ResourceTeam = fallbackGroup(group, in.Title)
	case group != "" && strings.HasSuffix(groupKey(group), groupKey(result.ResourceTeam)):
		// 打标器只认出了组名的后半段,如 Lilith-Raws 被认成 Raws
		result.ResourceTeam = group
	}

	Repair(in.Title, in.Subtitle, result)

	if in.Enrich && in.Path != "" && p.prober != nil {
		p.enrich(ctx, in.Path, result)
	}

	logger.Debug("metainfo parsed",
		"title", in.Title,
		"normalized", result.RevString,
		"type", result.Type,
		"summary", result.Summary())
	return result
}

func (p *Parser) tag(text string) meta.MediaItem {
	if strings.TrimSpace(text) == "" || p.tagger == nil {
		return meta.NewMediaItem(nil)
	}
	return meta.NewMediaItem(p.tagger.Tag(text))
}

// fallbackGroup 打标器未给出制作组时,依次取移到末尾的字幕组、结尾的 -GROUP
func fallbackGroup(relocated, original string) string {
	if relocated != "" {
		return relocated
	}
	if m := trailingGroupPattern.FindStringSubmatch(strings.TrimSpace(original)); m != nil && !isDigits(m[1]) {
		return m[1]
	}
	return ""
}

func isDigits(s string) bool {
	return strings.Trim(s, "0123456789") == ""
}

// enrich 用探测结果补全分辨率、编码与色彩信息
func (p *Parser) enrich(ctx context.Context, path string, result *meta.ParsedMetadata) {
	probe := p.prober.Probe(ctx, path)
	if probe == nil {
		logger.Debug("media probe unavailable, skip enrichment", "path", path)
		return
	}

	if pix := BucketResolution(ExtractHeight(probe)); pix != "" {
		result.ResourcePix = pix
	}
	if result.VideoEncode == "" {
		result.VideoEncode = ExtractVideoCodec(probe)
	}
	if result.AudioEncode == "" {
		result.AudioEncode = ExtractAudioCodec(probe)
	}

	result.ColorSpace = ExtractColorSpace(probe)
	result.DolbyVision = ExtractDolbyVision(probe)
	if result.DolbyVision {
		result.ResourceEffect = appendEffect(result.ResourceEffect, "DV")
	}
	if result.ColorSpace == ColorSpaceHDR {
		result.ResourceEffect = appendEffect(result.ResourceEffect, "HDR")
	}
}

func appendEffect(effect, tag string) string {
	for _, f := range strings.Fields(effect) {
		if strings.EqualFold(f, tag) {
			return effect
		}
	}
	return joinNonEmpty(effect, tag)
}
