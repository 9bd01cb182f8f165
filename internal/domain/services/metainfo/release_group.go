package metainfo

import (
	"strings"

	"golang.org/x/text/width"
)

// 字幕组、压制组、平台以及画质描述的关键词,小写
var releaseGroupKeywords = []string{
	"sub", "raws", "fansub", "字幕", "字幕组", "字幕社", "字幕組",
	"汉化", "漢化", "压制", "壓制", "制作", "製作", "搬运", "搬運",
	"发布", "發佈", "动漫", "動漫", "动画", "動畫", "工作室", "studio",
	"team", "vcb", "lolihouse", "nekomoe", "sakurato", "airota",
	"kamigami", "erai", "judas", "ember", "moozzi", "ohys", "leopard",
	"dmhy", "mabors", "fzsd", "dbd", "baha", "b.global",
	"bilibili", "crunchyroll", "喵萌", "桜都", "樱都", "千夏", "北宇治",
	"悠哈", "诸神", "極影", "极影", "澄空", "华盟", "幻樱", "天使动漫",
	"爱恋", "云光", "风之圣殿", "星空", "轻之国度", "猪猪", "网飞",
	"bdrip", "webrip", "web.dl", "bluray", "1080p", "720p", "2160p",
	"hevc", "x264", "x265", "hdtv",
}

// RelocateLeadingGroup 开头的方括号块若是字幕组,则移到字符串末尾
func RelocateLeadingGroup(s string) string {
	rest, _, _ := relocateLeadingGroup(s)
	return rest
}

// relocateLeadingGroup 返回移动后的字符串与组名;未移动时原样返回
func relocateLeadingGroup(s string) (string, string, bool) {
	m := leadingGroupPattern.FindStringSubmatchIndex(s)
	if m == nil {
		return s, "", false
	}

	content := ""
	for g := 1; g <= 2; g++ {
		if m[g*2] >= 0 {
			content = s[m[g*2]:m[g*2+1]]
		}
	}
	if !isReleaseGroup(content) {
		return s, "", false
	}

	block := s[m[0]:m[1]]
	return s[m[1]:] + block, strings.TrimSpace(content), true
}

func isReleaseGroup(content string) bool {
	lower := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(content)), "-", ".")
	if lower == "" {
		return false
	}
	for _, kw := range releaseGroupKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// originalGroup 从原始标题中取开头的字幕组,保留连字符等原始写法
func originalGroup(raw string) string {
	s := strings.NewReplacer("【", "[", "】", "]").Replace(strings.TrimSpace(raw))
	_, group, _ := relocateLeadingGroup(width.Fold.String(s))
	return group
}

// groupKey 比较组名时忽略大小写以及 - 与 . 的差别
func groupKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "."))
}
