package tagger

import (
	"github.com/moistari/rls"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
)

// RLSTagger 基于 moistari/rls
type RLSTagger struct{}

func NewRLSTagger() *RLSTagger {
	return &RLSTagger{}
}

// Tag 实现 metainfo.Tagger
func (t *RLSTagger) Tag(text string) meta.Tags {
	return safeTag(NameRLS, text, func(s string) meta.Tags {
		return releaseTags(rls.ParseString(s))
	})
}

// releaseTags rls.Release 映射为扁平键值
func releaseTags(r rls.Release) meta.Tags {
	b := tagBuilder{}

	switch r.Type {
	case rls.Movie:
		b["type"] = "movie"
	case rls.Episode, rls.Series:
		b["type"] = "episode"
	}

	b.str("title", r.Title)
	b.str("alternative_title", r.Alt)
	b.num("year", r.Year)
	b.num("season", r.Series)
	b.num("episode", r.Episode)
	b.str("version", r.Version)
	b.str("disc", r.Disc)

	b.str("source", r.Source)
	b.str("screen_size", r.Resolution)
	b.list("video_codec", r.Codec)
	b.list("audio_codec", r.Audio)
	b.str("audio_channels", r.Channels)

	b.str("streaming_service", r.Collection)
	b.str("release_group", r.Group)
	b.str("container", r.Container)
	b.list("language", r.Language)
	b.list("edition", r.Edition, r.Cut)
	b.list("other", r.HDR, r.Other)

	return meta.Tags(b)
}
