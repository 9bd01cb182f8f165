package metainfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	"github.com/easayliu/alist-aria2-metainfo/internal/domain/valueobjects"
)

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name   string
		values []meta.TagValue
		want   meta.TagValue
	}{
		{"全部缺失", []meta.TagValue{meta.Absent(), meta.Absent()}, meta.Absent()},
		{"标量取第一个", []meta.TagValue{meta.Absent(), meta.Scalar("a"), meta.Scalar("b")}, meta.Scalar("a")},
		{"列表优先于标量", []meta.TagValue{meta.Scalar("a"), meta.ListOf("1", "2")}, meta.ListOf("1", "2")},
		{"多个列表取前者", []meta.TagValue{meta.ListOf("1", "2"), meta.ListOf("3", "4")}, meta.ListOf("1", "2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coalesce(tt.values...))
		})
	}
}

func TestReconcileEpisode(t *testing.T) {
	title := meta.NewMediaItem(meta.Tags{
		"type":              "episode",
		"title":             "Show Name",
		"year":              2020,
		"season":            []int{3, 1, 2},
		"episode":           5,
		"source":            "Web",
		"streaming_service": "Netflix",
		"screen_size":       "1080P",
		"video_codec":       "H.265",
		"color_depth":       "10-bit",
		"audio_codec":       "AAC",
		"audio_channels":    "2.0",
		"release_group":     "GRP",
		"other":             []string{"HDR", "Remux"},
	})
	p := meta.NewParsedMetadata("Show.Name")

	Reconcile(title, meta.NewMediaItem(nil), p)

	assert.Equal(t, valueobjects.MediaTypeTV, p.Type)
	assert.Equal(t, "episode", p.MediaType)
	assert.Equal(t, "Show Name", p.ENName)
	assert.Empty(t, p.CNName)
	assert.Equal(t, "2020", p.Year)

	require.NotNil(t, p.BeginSeason)
	require.NotNil(t, p.EndSeason)
	assert.Equal(t, 1, *p.BeginSeason)
	assert.Equal(t, 3, *p.EndSeason)
	assert.Equal(t, 3, *p.TotalSeasons)

	require.NotNil(t, p.BeginEpisode)
	assert.Equal(t, 5, *p.BeginEpisode)
	assert.Nil(t, p.EndEpisode)
	assert.Equal(t, 1, *p.TotalEpisodes)

	assert.Equal(t, "NF", p.WebSource)
	assert.Equal(t, "NF WEB-DL", p.ResourceType)
	assert.Equal(t, "1080p", p.ResourcePix)
	assert.Equal(t, "H.265 10-bit", p.VideoEncode)
	assert.Equal(t, "AAC 2.0", p.AudioEncode)
	assert.Equal(t, "GRP", p.ResourceTeam)
	assert.Equal(t, "HDR Remux", p.ResourceEffect)
}

func TestReconcileSubtitleFallback(t *testing.T) {
	title := meta.NewMediaItem(meta.Tags{"title": "Movie", "screen_size": "720p"})
	subtitle := meta.NewMediaItem(meta.Tags{
		"type":        "movie",
		"screen_size": "2160p",
		"source":      "Blu-ray",
		"edition":     "Director's Cut",
	})
	p := meta.NewParsedMetadata("Movie")

	Reconcile(title, subtitle, p)

	assert.Equal(t, valueobjects.MediaTypeMovie, p.Type)
	assert.Equal(t, "720p", p.ResourcePix, "标题优先")
	assert.Equal(t, "Blu-ray", p.ResourceType)
	assert.Equal(t, "Director's Cut", p.Edition)
}

func TestReconcileMovieIgnoresSeasons(t *testing.T) {
	item := meta.NewMediaItem(meta.Tags{"type": "movie", "title": "Movie", "season": 2, "episode": 3})
	p := meta.NewParsedMetadata("Movie")

	Reconcile(item, meta.NewMediaItem(nil), p)

	assert.Nil(t, p.BeginSeason)
	assert.Nil(t, p.BeginEpisode)
}

func TestReconcileAbsentTypeKeepsDefault(t *testing.T) {
	p := meta.NewParsedMetadata("x")

	Reconcile(meta.NewMediaItem(nil), meta.NewMediaItem(nil), p)

	assert.Equal(t, valueobjects.MediaTypeMovie, p.Type)
	assert.Empty(t, p.MediaType)
	assert.Empty(t, p.Name())
}

func TestResolveNames(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantCN string
		wantEN string
	}{
		{"英文", "The Matrix", "", "The Matrix"},
		{"中文", "庆余年", "庆余年", ""},
		{"中英混合", "葬送的芙莉莲 Sousou no Frieren", "葬送的芙莉莲", "Sousou no Frieren"},
		{"空", "  ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := meta.NewParsedMetadata(tt.input)
			resolveNames(tt.input, p)
			assert.Equal(t, tt.wantCN, p.CNName)
			assert.Equal(t, tt.wantEN, p.ENName)
		})
	}
}

func TestResolveNamesKeepsProvided(t *testing.T) {
	p := meta.NewParsedMetadata("x")
	p.CNName, p.ENName = "黑客帝国", "The Matrix"

	resolveNames("Something Else", p)

	assert.Equal(t, "黑客帝国", p.CNName)
	assert.Equal(t, "The Matrix", p.ENName)
}

func TestNormalizeHelpers(t *testing.T) {
	assert.Equal(t, "WEB-DL", normalizeSource("web"))
	assert.Equal(t, "HDTV", normalizeSource("HDTV"))

	assert.Equal(t, "AMZN", normalizeStreamingService("Amazon Prime"))
	assert.Equal(t, "DSNP", normalizeStreamingService("Disney+"))
	assert.Equal(t, "HMAX", normalizeStreamingService("HBO Max"))
	assert.Equal(t, "ATVP", normalizeStreamingService("Apple TV+"))
	assert.Equal(t, "Hulu", normalizeStreamingService("Hulu"))

	assert.Equal(t, "1080p", normalizeScreenSize("1080P"))
	assert.Equal(t, "1080i", normalizeScreenSize("1080I"))
	assert.Equal(t, "4K", normalizeScreenSize("4K"))
}
