package fileutil

import (
	"path"
	"strings"
)

// Kind 按扩展名划分的文件类别
type Kind int

const (
	KindOther Kind = iota
	KindVideo
	KindSubtitle
)

// DefaultVideoExtensions 默认视频扩展名,不带点号
var DefaultVideoExtensions = []string{
	"mp4", "mkv", "avi", "mov", "wmv", "flv", "webm",
	"m4v", "mpg", "mpeg", "3gp", "rmvb", "ts", "m2ts", "iso",
}

var subtitleExtensions = map[string]bool{
	"srt": true, "ass": true, "ssa": true, "sub": true, "sup": true, "vtt": true,
}

// Extension 小写扩展名,不带点号;目录分隔符后的隐藏文件视为无扩展名
func Extension(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := path.Ext(base)
	if ext == "" || ext == base {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// Classify 判断文件类别,videoExts 为空时使用默认列表
func Classify(name string, videoExts []string) Kind {
	ext := Extension(name)
	if ext == "" {
		return KindOther
	}
	if len(videoExts) == 0 {
		videoExts = DefaultVideoExtensions
	}
	for _, v := range videoExts {
		if strings.EqualFold(strings.TrimPrefix(v, "."), ext) {
			return KindVideo
		}
	}
	if subtitleExtensions[ext] {
		return KindSubtitle
	}
	return KindOther
}

// IsVideoFile 是否为视频文件
func IsVideoFile(name string, videoExts []string) bool {
	return Classify(name, videoExts) == KindVideo
}
