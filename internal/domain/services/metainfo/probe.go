package metainfo

import (
	"strings"
	"unicode"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
)

const (
	ColorSpaceSDR = "SDR"
	ColorSpaceHDR = "HDR"
)

func firstStream(result *meta.ProbeResult, codecType string) *meta.ProbeStream {
	if result == nil {
		return nil
	}
	for i := range result.Streams {
		if strings.EqualFold(result.Streams[i].CodecType, codecType) {
			return &result.Streams[i]
		}
	}
	return nil
}

// ExtractColorSpace 第一条视频流的色彩空间归为 SDR/HDR,无法判断时为空
func ExtractColorSpace(result *meta.ProbeResult) string {
	stream := firstStream(result, "video")
	if stream == nil {
		return ""
	}
	cs := compact(stream.ColorSpace)
	switch {
	case strings.Contains(cs, "bt709"), strings.Contains(cs, "rec709"):
		return ColorSpaceSDR
	case strings.Contains(cs, "bt2020"), strings.Contains(cs, "rec2020"):
		return ColorSpaceHDR
	}
	return ""
}

// ExtractDolbyVision 任一流的 tag 值包含 dolby
func ExtractDolbyVision(result *meta.ProbeResult) bool {
	if result == nil {
		return false
	}
	for _, stream := range result.Streams {
		for _, v := range stream.Tags {
			if strings.Contains(strings.ToLower(v), "dolby") {
				return true
			}
		}
	}
	return false
}

// ExtractVideoCodec 第一条视频流的编码
func ExtractVideoCodec(result *meta.ProbeResult) string {
	if stream := firstStream(result, "video"); stream != nil {
		return stream.CodecName
	}
	return ""
}

// ExtractAudioCodec 第一条音频流的编码
func ExtractAudioCodec(result *meta.ProbeResult) string {
	if stream := firstStream(result, "audio"); stream != nil {
		return stream.CodecName
	}
	return ""
}

// ExtractHeight 第一条视频流的高度
func ExtractHeight(result *meta.ProbeResult) int {
	if stream := firstStream(result, "video"); stream != nil {
		return stream.Height
	}
	return 0
}

// compact 小写并去掉标点空白,BT.709 / bt-709 / Rec 709 统一
func compact(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
