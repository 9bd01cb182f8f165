package tagger

import (
	"strconv"

	ptt "github.com/MunifTanjim/go-ptt"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
)

// PTTTagger 基于 MunifTanjim/go-ptt
type PTTTagger struct{}

func NewPTTTagger() *PTTTagger {
	return &PTTTagger{}
}

// Tag 实现 metainfo.Tagger
func (t *PTTTagger) Tag(text string) meta.Tags {
	return safeTag(NamePTT, text, func(s string) meta.Tags {
		info := ptt.Parse(s)

		b := tagBuilder{}
		b.str("title", info.Title)
		if year, err := strconv.Atoi(info.Year); err == nil {
			b.num("year", year)
		}
		b.nums("season", info.Seasons)
		b.nums("episode", info.Episodes)
		if len(info.Seasons) > 0 || len(info.Episodes) > 0 {
			b["type"] = "episode"
		} else if info.Title != "" {
			b["type"] = "movie"
		}

		b.str("source", info.Quality)
		b.str("screen_size", info.Resolution)
		b.str("video_codec", info.Codec)
		b.str("color_depth", info.BitDepth)
		b.list("audio_codec", info.Audio)
		b.list("audio_channels", info.Channels)
		b.list("other", info.HDR)
		b.str("streaming_service", info.Network)
		b.str("release_group", info.Group)
		b.str("container", info.Container)
		b.list("language", info.Languages)
		return meta.Tags(b)
	})
}
