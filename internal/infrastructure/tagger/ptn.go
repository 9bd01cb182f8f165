package tagger

import (
	ptn "github.com/razsteinmetz/go-ptn"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
)

// PTNTagger 基于 razsteinmetz/go-ptn
type PTNTagger struct{}

func NewPTNTagger() *PTNTagger {
	return &PTNTagger{}
}

// Tag 实现 metainfo.Tagger,解析失败视为没有任何信号
func (t *PTNTagger) Tag(text string) meta.Tags {
	return safeTag(NamePTN, text, func(s string) meta.Tags {
		info, err := ptn.Parse(s)
		if err != nil || info == nil {
			logger.Debug("ptn parse failed", "text", s, "error", err)
			return meta.Tags{}
		}

		b := tagBuilder{}
		b.str("title", info.Title)
		b.num("year", info.Year)
		b.num("season", info.Season)
		b.num("episode", info.Episode)
		if info.Season > 0 || info.Episode > 0 {
			b["type"] = "episode"
		} else if info.Title != "" {
			b["type"] = "movie"
		}

		b.str("source", info.Quality)
		b.str("screen_size", info.Resolution)
		b.str("video_codec", info.Codec)
		b.str("audio_codec", info.Audio)
		b.str("release_group", info.Group)
		b.str("container", info.Container)
		return meta.Tags(b)
	})
}
