package valueobjects

import "strings"

// MediaType 解析结果的媒体类型
type MediaType string

const (
	MediaTypeMovie MediaType = "movie" // 电影
	MediaTypeTV    MediaType = "tv"    // 剧集
)

// String 返回媒体类型的字符串表示
func (m MediaType) String() string {
	return string(m)
}

// Label 中文名称,用于消息展示
func (m MediaType) Label() string {
	if m == MediaTypeTV {
		return "剧集"
	}
	return "电影"
}

// MediaTypeFromTag 将打标结果中的类型映射为电影/剧集
// 只有 "movie" (不区分大小写) 判定为电影,其余一律视为剧集
func MediaTypeFromTag(tag string) MediaType {
	if strings.EqualFold(strings.TrimSpace(tag), "movie") {
		return MediaTypeMovie
	}
	return MediaTypeTV
}
