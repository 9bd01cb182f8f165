package metainfo

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	"github.com/easayliu/alist-aria2-metainfo/internal/domain/valueobjects"
)

// stubTagger 按子串返回预设的打标结果,并记录收到的文本
type stubTagger struct {
	rules []stubRule
	seen  []string
}

type stubRule struct {
	contains string
	tags     meta.Tags
}

func (s *stubTagger) Tag(text string) meta.Tags {
	s.seen = append(s.seen, text)
	for _, r := range s.rules {
		if strings.Contains(text, r.contains) {
			return r.tags
		}
	}
	return meta.Tags{}
}

type stubProber struct {
	result *meta.ProbeResult
	calls  int
}

func (s *stubProber) Probe(ctx context.Context, path string) *meta.ProbeResult {
	s.calls++
	return s.result
}

func TestParseAnimeRelease(t *testing.T) {
	tagger := &stubTagger{rules: []stubRule{{"Toradora", meta.Tags{
		"type":        "episode",
		"title":       "Toradora!",
		"year":        2008,
		"episode":     1,
		"screen_size": "720p",
		"video_codec": "H.264",
		"audio_codec": "FLAC",
	}}}}
	parser := NewParser(tagger, nil)

	title := "[TaigaSubs]_Toradora!_(2008)_-_01v2_-_Tiger_and_Dragon_[1280x720_H.264_FLAC][1234ABCD].mkv"
	result := parser.Parse(context.Background(), Input{Title: title})

	assert.Equal(t, title, result.OrgString)
	assert.Contains(t, result.RevString, ".E01.")
	assert.True(t, strings.HasSuffix(result.RevString, "TaigaSubs"))
	require.Len(t, tagger.seen, 1, "空副标题不打标")

	assert.Equal(t, valueobjects.MediaTypeTV, result.Type)
	assert.Equal(t, "Toradora!", result.ENName)
	assert.Equal(t, "2008", result.Year)
	require.NotNil(t, result.BeginEpisode)
	assert.Equal(t, 1, *result.BeginEpisode)
	assert.Nil(t, result.BeginSeason)
	assert.Equal(t, "TaigaSubs", result.ResourceTeam)
	assert.Equal(t, "720p", result.ResourcePix)
	assert.Equal(t, "H.264", result.VideoEncode)
	assert.Equal(t, "FLAC", result.AudioEncode)
}

func TestParseRepairsSeasonEpisode(t *testing.T) {
	// 打标器没认出季集,由原始标题修正
	tagger := &stubTagger{rules: []stubRule{{"Gundam", meta.Tags{"title": "Gundam", "year": 2008}}}}
	parser := NewParser(tagger, nil)

	result := parser.Parse(context.Background(), Input{Title: "Gundam_00_Season_2_Ep07_(2008)-THORA.mkv"})

	assert.Contains(t, result.RevString, ".S02.E07.")
	assert.Equal(t, valueobjects.MediaTypeTV, result.Type)
	require.NotNil(t, result.BeginSeason)
	require.NotNil(t, result.BeginEpisode)
	assert.Equal(t, 2, *result.BeginSeason)
	assert.Equal(t, 7, *result.BeginEpisode)
	assert.Equal(t, "THORA", result.ResourceTeam)
	assert.Equal(t, "S02E07", result.SeasonEpisode())
}

func TestParseMovie(t *testing.T) {
	tagger := &stubTagger{rules: []stubRule{{"Matrix", meta.Tags{
		"type":          "movie",
		"title":         "The Matrix",
		"year":          1999,
		"screen_size":   "1080p",
		"source":        "Blu-ray",
		"video_codec":   "H.264",
		"release_group": "GROUP",
	}}}}
	parser := NewParser(tagger, nil)

	result := parser.Parse(context.Background(), Input{Title: "The.Matrix.1999.1080p.BluRay.x264-GROUP.mkv"})

	assert.Equal(t, valueobjects.MediaTypeMovie, result.Type)
	assert.Equal(t, "The Matrix", result.ENName)
	assert.Equal(t, "1999", result.Year)
	assert.Equal(t, "Blu-ray", result.ResourceType)
	assert.Equal(t, "GROUP", result.ResourceTeam)
	assert.Nil(t, result.BeginSeason)
	assert.Nil(t, result.BeginEpisode)
}

func TestParseChineseSeries(t *testing.T) {
	tagger := &stubTagger{rules: []stubRule{{"庆余年", meta.Tags{
		"type":        "episode",
		"title":       "庆余年",
		"year":        2024,
		"season":      2,
		"screen_size": "2160p",
	}}}}
	parser := NewParser(tagger, nil)

	result := parser.Parse(context.Background(), Input{Title: "庆余年.第二季.2024.全36集.2160p"})

	assert.Equal(t, "庆余年.S02.2024.全36集.2160p", result.RevString)
	assert.Equal(t, "庆余年", result.CNName)
	assert.Empty(t, result.ENName)
	assert.Equal(t, 2, *result.BeginSeason)
	assert.Nil(t, result.EndSeason)
	assert.Equal(t, 1, *result.BeginEpisode)
	assert.Equal(t, 36, *result.EndEpisode)
	assert.Equal(t, 36, *result.TotalEpisodes)
	assert.Equal(t, "2160p", result.ResourcePix)
}

func TestParseMixedNames(t *testing.T) {
	tagger := &stubTagger{rules: []stubRule{{"Frieren", meta.Tags{
		"type":    "episode",
		"title":   "葬送的芙莉莲 Sousou no Frieren",
		"episode": 12,
	}}}}
	parser := NewParser(tagger, nil)

	result := parser.Parse(context.Background(), Input{
		Title: "[LoliHouse] 葬送的芙莉莲 / Sousou no Frieren - 12 [WebRip 1080p HEVC-10bit AAC].mkv",
	})

	assert.Equal(t, "葬送的芙莉莲", result.CNName)
	assert.Equal(t, "Sousou no Frieren", result.ENName)
	assert.Equal(t, "LoliHouse", result.ResourceTeam)
	assert.Equal(t, 12, *result.BeginEpisode)
}

func TestParseNoSignal(t *testing.T) {
	tagger := &stubTagger{}
	parser := NewParser(tagger, nil)

	result := parser.Parse(context.Background(), Input{})

	assert.Equal(t, valueobjects.MediaTypeMovie, result.Type)
	assert.Empty(t, result.Name())
	assert.Empty(t, result.RevString)
	assert.Empty(t, tagger.seen)
	assert.NotNil(t, result.AppliedWords)

	result = parser.Parse(context.Background(), Input{Title: "asdfqwer"})
	assert.Equal(t, valueobjects.MediaTypeMovie, result.Type)
	assert.Empty(t, result.ResourceTeam)
	assert.Nil(t, result.BeginSeason)
}

func TestParseNilTagger(t *testing.T) {
	result := NewParser(nil, nil).Parse(context.Background(), Input{Title: "Show.S01.E02"})

	assert.Equal(t, valueobjects.MediaTypeTV, result.Type)
	assert.Equal(t, "S01E02", result.SeasonEpisode())
}

func TestParseKeepsProvidedFields(t *testing.T) {
	tagger := &stubTagger{rules: []stubRule{{"Matrix", meta.Tags{"type": "movie", "title": "Matrix"}}}}
	parser := NewParser(tagger, nil)

	result := parser.Parse(context.Background(), Input{
		Title:         "Matrix.1999",
		CNName:        "黑客帝国",
		ENName:        "The Matrix",
		AppliedWords:  []string{"Matrx => Matrix"},
		Customization: "国语",
	})

	assert.Equal(t, "黑客帝国", result.CNName)
	assert.Equal(t, "The Matrix", result.ENName)
	assert.Equal(t, []string{"Matrx => Matrix"}, result.AppliedWords)
	assert.Equal(t, "国语", result.Customization)
}

func TestParseEnrichment(t *testing.T) {
	probe := &meta.ProbeResult{Streams: []meta.ProbeStream{
		{CodecType: "video", CodecName: "hevc", Width: 3840, Height: 2160, ColorSpace: "bt2020nc",
			Tags: map[string]string{"DOVI": "Dolby Vision"}},
		{CodecType: "audio", CodecName: "eac3"},
	}}
	tagger := &stubTagger{rules: []stubRule{{"Movie", meta.Tags{"type": "movie", "title": "Movie", "screen_size": "1080p"}}}}

	t.Run("探测成功", func(t *testing.T) {
		prober := &stubProber{result: probe}
		result := NewParser(tagger, prober).Parse(context.Background(),
			Input{Title: "Movie.2020", Path: "/downloads/Movie.2020.mkv", Enrich: true})

		assert.Equal(t, 1, prober.calls)
		assert.Equal(t, "4K", result.ResourcePix)
		assert.Equal(t, "hevc", result.VideoEncode)
		assert.Equal(t, "eac3", result.AudioEncode)
		assert.Equal(t, ColorSpaceHDR, result.ColorSpace)
		assert.True(t, result.DolbyVision)
		assert.Equal(t, "DV HDR", result.ResourceEffect)
	})

	t.Run("探测失败", func(t *testing.T) {
		prober := &stubProber{}
		result := NewParser(tagger, prober).Parse(context.Background(),
			Input{Title: "Movie.2020", Path: "/downloads/Movie.2020.mkv", Enrich: true})

		assert.Equal(t, 1, prober.calls)
		assert.Equal(t, "1080p", result.ResourcePix)
		assert.Empty(t, result.ColorSpace)
		assert.False(t, result.DolbyVision)
	})

	t.Run("未开启", func(t *testing.T) {
		prober := &stubProber{result: probe}
		result := NewParser(tagger, prober).Parse(context.Background(),
			Input{Title: "Movie.2020", Path: "/downloads/Movie.2020.mkv"})

		assert.Zero(t, prober.calls)
		assert.Equal(t, "1080p", result.ResourcePix)
	})

	t.Run("无路径", func(t *testing.T) {
		prober := &stubProber{result: probe}
		NewParser(tagger, prober).Parse(context.Background(), Input{Title: "Movie.2020", Enrich: true})
		assert.Zero(t, prober.calls)
	})
}

func TestAppendEffect(t *testing.T) {
	assert.Equal(t, "HDR", appendEffect("", "HDR"))
	assert.Equal(t, "Remux HDR", appendEffect("Remux", "HDR"))
	assert.Equal(t, "hdr Remux", appendEffect("hdr Remux", "HDR"))
}

func TestParseRestoresGroupSpelling(t *testing.T) {
	tests := []struct {
		name string
		team string
		want string
	}{
		{"打标器只认出后半段", "Raws", "Lilith-Raws"},
		{"打标器给出点号写法", "Lilith.Raws", "Lilith-Raws"},
		{"打标器没有组名", "", "Lilith-Raws"},
		{"打标器给出其他组", "NaN", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := meta.Tags{"type": "episode", "title": "Spy x Family", "episode": 3}
			if tt.team != "" {
				tags["release_group"] = tt.team
			}
			parser := NewParser(&stubTagger{rules: []stubRule{{"Spy", tags}}}, nil)

			result := parser.Parse(context.Background(), Input{
				Title: "[Lilith-Raws] 间谍过家家 / Spy x Family - 03 [Baha][WEB-DL][1080p][AVC AAC][CHT][MP4]",
			})

			assert.Equal(t, tt.want, result.ResourceTeam)
		})
	}
}
