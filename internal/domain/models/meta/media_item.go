package meta

// Tags 打标器输出的扁平键值
type Tags map[string]any

// MediaItem 单次打标结果的结构化形式
type MediaItem struct {
	Main         Main
	Episode      Episode
	Video        Video
	Audio        Audio
	Localization Localization
	Other        Other
}

// Main 基础信息
type Main struct {
	MediaType        TagValue
	Title            TagValue
	AlternativeTitle TagValue
	Container        TagValue
	Mimetype         TagValue
	Date             TagValue
	Year             TagValue
	Week             TagValue
	ReleaseGroup     TagValue
	Website          TagValue
	StreamingService TagValue
}

// Episode 季集信息,season/episode 可能是列表
type Episode struct {
	Season         TagValue
	Episode        TagValue
	Disc           TagValue
	EpisodeCount   TagValue
	SeasonCount    TagValue
	EpisodeDetails TagValue
	EpisodeFormat  TagValue
	Part           TagValue
	Version        TagValue
}

// Video 视频信息
type Video struct {
	Source       TagValue
	ScreenSize   TagValue
	AspectRatio  TagValue
	VideoCodec   TagValue
	VideoProfile TagValue
	ColorDepth   TagValue
	VideoBitRate TagValue
	FrameRate    TagValue
}

// Audio 音频信息
type Audio struct {
	AudioChannels TagValue
	AudioCodec    TagValue
	AudioProfile  TagValue
	AudioBitRate  TagValue
}

// Localization 语言地区
type Localization struct {
	Country          TagValue
	Language         TagValue
	SubtitleLanguage TagValue
}

// Other 其他
type Other struct {
	Bonus      TagValue
	BonusTitle TagValue
	CD         TagValue
	CDCount    TagValue
	CRC32      TagValue
	UUID       TagValue
	Size       TagValue
	Edition    TagValue
	Film       TagValue
	FilmTitle  TagValue
	FilmSeries TagValue
	Other      TagValue
}

// field 键名与字段的绑定,构造和导出共用一张表
type field struct {
	key string
	ptr *TagValue
}

func (m *MediaItem) fields() []field {
	return []field{
		{"type", &m.Main.MediaType},
		{"title", &m.Main.Title},
		{"alternative_title", &m.Main.AlternativeTitle},
		{"container", &m.Main.Container},
		{"mimetype", &m.Main.Mimetype},
		{"date", &m.Main.Date},
		{"year", &m.Main.Year},
		{"week", &m.Main.Week},
		{"release_group", &m.Main.ReleaseGroup},
		{"website", &m.Main.Website},
		{"streaming_service", &m.Main.StreamingService},

		{"season", &m.Episode.Season},
		{"episode", &m.Episode.Episode},
		{"disc", &m.Episode.Disc},
		{"episode_count", &m.Episode.EpisodeCount},
		{"season_count", &m.Episode.SeasonCount},
		{"episode_details", &m.Episode.EpisodeDetails},
		{"episode_format", &m.Episode.EpisodeFormat},
		{"part", &m.Episode.Part},
		{"version", &m.Episode.Version},

		{"source", &m.Video.Source},
		{"screen_size", &m.Video.ScreenSize},
		{"aspect_ratio", &m.Video.AspectRatio},
		{"video_codec", &m.Video.VideoCodec},
		{"video_profile", &m.Video.VideoProfile},
		{"color_depth", &m.Video.ColorDepth},
		{"video_bit_rate", &m.Video.VideoBitRate},
		{"frame_rate", &m.Video.FrameRate},

		{"audio_channels", &m.Audio.AudioChannels},
		{"audio_codec", &m.Audio.AudioCodec},
		{"audio_profile", &m.Audio.AudioProfile},
		{"audio_bit_rate", &m.Audio.AudioBitRate},

		{"country", &m.Localization.Country},
		{"language", &m.Localization.Language},
		{"subtitle_language", &m.Localization.SubtitleLanguage},

		{"bonus", &m.Other.Bonus},
		{"bonus_title", &m.Other.BonusTitle},
		{"cd", &m.Other.CD},
		{"cd_count", &m.Other.CDCount},
		{"crc32", &m.Other.CRC32},
		{"uuid", &m.Other.UUID},
		{"size", &m.Other.Size},
		{"edition", &m.Other.Edition},
		{"film", &m.Other.Film},
		{"film_title", &m.Other.FilmTitle},
		{"film_series", &m.Other.FilmSeries},
		{"other", &m.Other.Other},
	}
}

// NewMediaItem 从打标结果构造 MediaItem,缺失或类型异常的键得到空值
func NewMediaItem(tags Tags) MediaItem {
	var item MediaItem
	for _, f := range item.fields() {
		*f.ptr = TagValueOf(tags[f.key])
	}
	// 兼容以 media_type 为键的打标器
	if item.Main.MediaType.IsAbsent() {
		item.Main.MediaType = TagValueOf(tags["media_type"])
	}
	return item
}

// ToMap 导出全部键,缺失值为空串,列表为 []string
func (m MediaItem) ToMap() map[string]any {
	fields := m.fields()
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[f.key] = f.ptr.export()
	}
	return out
}
