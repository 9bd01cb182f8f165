package metainfo

import "testing"

// sliceTokens 测试用的词元序列
type sliceTokens struct {
	tokens []string
	pos    int
}

func (s *sliceTokens) Next() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

func TestSplitMixedName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantCN string
		wantEN string
	}{
		{"中前英后", "葬送的芙莉莲 Sousou no Frieren", "葬送的芙莉莲", "Sousou no Frieren"},
		{"无分隔符", "流浪地球The Wandering Earth", "流浪地球", "The Wandering Earth"},
		{"中文带数字", "复仇者联盟4 Avengers Endgame", "复仇者联盟4", "Avengers Endgame"},
		{"点分隔", "三体.Three.Body", "三体", "Three Body"},
		{"纯英文", "The Matrix", "", "The Matrix"},
		{"空串", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cn, en := SplitMixedName(tt.input)
			if cn != tt.wantCN || en != tt.wantEN {
				t.Errorf("SplitMixedName(%q) = (%q, %q), want (%q, %q)", tt.input, cn, en, tt.wantCN, tt.wantEN)
			}
		})
	}
}

func TestSplitTokensFromSource(t *testing.T) {
	cn, en := splitTokens(&sliceTokens{tokens: []string{"Kimi", "你的名字", "no", "Na", "Wa"}})
	if cn != "你的名字" || en != "Kimi no Na Wa" {
		t.Errorf("splitTokens() = (%q, %q)", cn, en)
	}
}
