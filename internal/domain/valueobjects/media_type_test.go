package valueobjects

import "testing"

func TestMediaTypeFromTag(t *testing.T) {
	tests := []struct {
		tag  string
		want MediaType
	}{
		{"movie", MediaTypeMovie},
		{"Movie", MediaTypeMovie},
		{" MOVIE ", MediaTypeMovie},
		{"episode", MediaTypeTV},
		{"series", MediaTypeTV},
		{"", MediaTypeTV},
	}

	for _, tt := range tests {
		if got := MediaTypeFromTag(tt.tag); got != tt.want {
			t.Errorf("MediaTypeFromTag(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
