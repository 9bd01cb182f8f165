package metainfo

import "testing"

func TestRelocateLeadingGroup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"已知字幕组", "[HorribleSubs] Show - 01 [1080p].mkv", " Show - 01 [1080p].mkv[HorribleSubs]"},
		{"未知方括号保持不变", "[FFF] Show - 01 [720p]", "[FFF] Show - 01 [720p]"},
		{"全角括号", "【喵萌奶茶屋】【Show】[01]", "【Show】[01]【喵萌奶茶屋】"},
		{"带连字符的组名", "[NC-Raws] Show - 05", " Show - 05[NC-Raws]"},
		{"画质描述", "[BDRip] Show", " Show[BDRip]"},
		{"无方括号", "Show.S01E01", "Show.S01E01"},
		{"空方括号", "[]Show", "[]Show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelocateLeadingGroup(tt.input); got != tt.want {
				t.Errorf("RelocateLeadingGroup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRelocateLeadingGroupName(t *testing.T) {
	_, group, ok := relocateLeadingGroup("[ LoliHouse ] Show")
	if !ok || group != "LoliHouse" {
		t.Errorf("relocateLeadingGroup() group = %q, ok = %v", group, ok)
	}
}

func TestOriginalGroup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"保留连字符", "[Lilith-Raws] 间谍过家家 - 03", "Lilith-Raws"},
		{"全角括号", "【喵萌奶茶屋】【Show】[01]", "喵萌奶茶屋"},
		{"不是字幕组", "[FFF] Show - 01", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := originalGroup(tt.input); got != tt.want {
				t.Errorf("originalGroup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
