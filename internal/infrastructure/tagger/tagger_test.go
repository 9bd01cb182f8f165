package tagger

import (
	"testing"

	"github.com/moistari/rls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
)

func TestNew(t *testing.T) {
	for _, name := range append(Names(), "", " RLS ") {
		tagger, err := New(name)
		require.NoError(t, err, name)
		assert.NotNil(t, tagger)
	}

	_, err := New("guessit")
	assert.Error(t, err)
}

func TestReleaseTags(t *testing.T) {
	tags := releaseTags(rls.Release{
		Type:       rls.Episode,
		Title:      "Show Name",
		Year:       2020,
		Series:     1,
		Episode:    2,
		Source:     "WEB-DL",
		Resolution: "1080p",
		Codec:      []string{"x265"},
		Audio:      []string{"DDP", "Atmos"},
		Channels:   "5.1",
		HDR:        []string{"HDR10"},
		Other:      []string{"REPACK"},
		Collection: "NF",
		Group:      "GRP",
	})

	assert.Equal(t, "episode", tags["type"])
	assert.Equal(t, "Show Name", tags["title"])
	assert.Equal(t, 2020, tags["year"])
	assert.Equal(t, 1, tags["season"])
	assert.Equal(t, 2, tags["episode"])
	assert.Equal(t, "x265", tags["video_codec"])
	assert.Equal(t, []string{"DDP", "Atmos"}, tags["audio_codec"])
	assert.Equal(t, []string{"HDR10", "REPACK"}, tags["other"])
	assert.Equal(t, "NF", tags["streaming_service"])
	assert.Equal(t, "GRP", tags["release_group"])
	assert.NotContains(t, tags, "edition")

	item := meta.NewMediaItem(tags)
	assert.Equal(t, "5.1", item.Audio.AudioChannels.String())
	assert.True(t, item.Other.Other.IsList())
}

func TestReleaseTagsMovieAndUnknown(t *testing.T) {
	tags := releaseTags(rls.Release{Type: rls.Movie, Title: "Movie"})
	assert.Equal(t, "movie", tags["type"])
	assert.NotContains(t, tags, "year")
	assert.NotContains(t, tags, "season")

	tags = releaseTags(rls.Release{})
	assert.NotContains(t, tags, "type")
	assert.Empty(t, tags)
}

func TestTaggersNeverFail(t *testing.T) {
	inputs := []string{"", "   ", "....", "[]()【】", "第十十季", "\x00\xff", "庆余年.S02.2024"}

	for _, name := range Names() {
		tagger, err := New(name)
		require.NoError(t, err)
		for _, in := range inputs {
			assert.NotPanics(t, func() {
				tags := tagger.Tag(in)
				meta.NewMediaItem(tags)
			}, "%s: %q", name, in)
		}
	}
}

func TestSafeTagRecovers(t *testing.T) {
	tags := safeTag("boom", "x", func(string) meta.Tags { panic("bad input") })
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}
