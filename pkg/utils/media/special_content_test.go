package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExtra(t *testing.T) {
	tests := []struct {
		name string
		want ExtraKind
	}{
		{"庆余年.第二季.预告.mp4", ExtraTrailer},
		{"Show.S01.花絮.mkv", ExtraBehind},
		{"Movie.2020.Trailer.1080p.mkv", ExtraTrailer},
		{"Movie 2020 - Behind the Scenes.mkv", ExtraBehind},
		{"Interview.with.Cast.mkv", ExtraInterview},
		{"movie-sample.mkv", ExtraSample},
		{"Extraction.2020.1080p.mkv", ExtraNone},
		{"Specialist.S01E01.mkv", ExtraNone},
		{"Show.S01E01.1080p.mkv", ExtraNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyExtra(tt.name))
			assert.Equal(t, tt.want != ExtraNone, IsSpecialContent(tt.name))
		})
	}
}
