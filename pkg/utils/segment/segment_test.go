package segment

import (
	"reflect"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"空字符串", "", nil},
		{"纯英文", "Joy of Life", []string{"Joy", "of", "Life"}},
		{"中英混合", "庆余年 Joy of Life", []string{"庆余年", "Joy", "of", "Life"}},
		{"无分隔符交界", "庆余年JoyOfLife", []string{"庆余年", "JoyOfLife"}},
		{"数字跟随中文", "进击的巨人2", []string{"进击的巨人2"}},
		{"数字跟随英文", "Gundam00.Season", []string{"Gundam00", "Season"}},
		{"点和书名号", "《流浪地球》.The.Wandering.Earth", []string{"流浪地球", "The", "Wandering", "Earth"}},
		{"只有分隔符", " ._ ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokens(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSegmenterReset(t *testing.T) {
	seg := New("三体 Three Body")

	first, _ := seg.Next()
	for {
		if _, ok := seg.Next(); !ok {
			break
		}
	}
	if _, ok := seg.Next(); ok {
		t.Fatal("exhausted segmenter should stay exhausted")
	}

	seg.Reset()
	again, ok := seg.Next()
	if !ok || again != first {
		t.Errorf("after Reset Next() = %q, %v, want %q", again, ok, first)
	}
}
