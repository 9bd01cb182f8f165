// Package media 识别下载内容中的附加视频(预告、花絮等)。
package media

import (
	"strings"
	"unicode"
)

// ExtraKind 附加内容类别
type ExtraKind string

const (
	ExtraNone      ExtraKind = ""
	ExtraTrailer   ExtraKind = "trailer"
	ExtraBehind    ExtraKind = "behind_the_scenes"
	ExtraFeature   ExtraKind = "featurette"
	ExtraInterview ExtraKind = "interview"
	ExtraSample    ExtraKind = "sample"
)

// 中文关键词按子串匹配
var cjkKeywords = []struct {
	word string
	kind ExtraKind
}{
	{"预告", ExtraTrailer}, {"片花", ExtraTrailer}, {"先导", ExtraTrailer},
	{"花絮", ExtraBehind}, {"幕后", ExtraBehind}, {"彩蛋", ExtraBehind}, {"母带放送", ExtraBehind},
	{"特辑", ExtraFeature}, {"加更", ExtraFeature}, {"番外", ExtraFeature}, {"集锦", ExtraFeature},
	{"特别企划", ExtraFeature}, {"超前营业", ExtraFeature}, {"陪看记", ExtraFeature},
	{"访谈", ExtraInterview}, {"采访", ExtraInterview},
}

// 英文关键词按整词匹配,避免 Extraction 之类的误判
var latinKeywords = map[string]ExtraKind{
	"trailer":     ExtraTrailer,
	"teaser":      ExtraTrailer,
	"preview":     ExtraTrailer,
	"behind":      ExtraBehind,
	"making":      ExtraBehind,
	"bloopers":    ExtraBehind,
	"featurette":  ExtraFeature,
	"featurettes": ExtraFeature,
	"extras":      ExtraFeature,
	"bonus":       ExtraFeature,
	"vlog":        ExtraFeature,
	"interview":   ExtraInterview,
	"interviews":  ExtraInterview,
	"sample":      ExtraSample,
}

// ClassifyExtra 返回附加内容类别,正片返回 ExtraNone
func ClassifyExtra(name string) ExtraKind {
	lower := strings.ToLower(name)
	for _, k := range cjkKeywords {
		if strings.Contains(lower, k.word) {
			return k.kind
		}
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) || r > unicode.MaxLatin1
	})
	for _, w := range words {
		if kind, ok := latinKeywords[w]; ok {
			return kind
		}
	}
	return ExtraNone
}

// IsSpecialContent 是否为附加内容
func IsSpecialContent(name string) bool {
	return ClassifyExtra(name) != ExtraNone
}
