package metainfo

import (
	"regexp"

	strutil "github.com/easayliu/alist-aria2-metainfo/pkg/utils/string"
)

// 季集正则的公共片段
const (
	num      = `[` + strutil.NumeralChars + `]+`
	sep      = `[.\s_\[\]()【】]`
	joiner   = `[.\s_~&+至到]`
	seasonEN = `(?:Season[.\s_]?|S)`
	episodEN = `(?:Episode[.\s_]?|EP?)`
	episodCN = `[集话話期]`
)

var (
	// 文件名非法字符
	illegalCharsPattern = regexp.MustCompile(`[*?\\/"<>~|]`)

	// 末尾的媒体扩展名
	mediaExtPattern = regexp.MustCompile(`(?i)\.(?:mkv|mp4|avi|ts|m2ts|rmvb|wmv|flv|webm|mov|iso|srt|ass|ssa)$`)

	// 装饰性的方括号标记:语言地区、字幕组招募
	decorativeTagPattern = regexp.MustCompile(`(?i)\[(?:GB|BIG5|JP|CN|CHS|CHT|CHS_JP|CHT_JP|GB_JP|BIG5_JP|简体|繁体|简中|繁中|简日|繁日|简繁|简繁日|中日双语|简日双语|繁日双语|中文字幕|内封字幕|[^\]]*招募[^\]]*|[^\]]*招人[^\]]*|[^\]]*加入我们[^\]]*)\]`)

	// 方括号中的孤立数字,几乎总是集数
	bracketNumberPattern = regexp.MustCompile(`\[(\d{1,3})(?:[vV]\d)?\]`)

	// 开头的方括号块
	leadingBracketPattern = regexp.MustCompile(`^\[[^\]]*\]`)

	// 开头的字幕组块,支持全角括号
	leadingGroupPattern = regexp.MustCompile(`^(?:\[([^\]]*)\]|【([^】]*)】)`)

	// 季:范围、单季
	seasonRangeCNPattern  = regexp.MustCompile(`第\s*(` + num + `)\s*季` + joiner + `*第\s*(` + num + `)\s*季`)
	seasonSpanCNPattern   = regexp.MustCompile(`第\s*(` + num + `)` + joiner + `+(` + num + `)\s*季`)
	seasonRangeENPattern  = regexp.MustCompile(`(?i)(^|` + sep + `)` + seasonEN + `(\d{1,4})` + joiner + `*` + seasonEN + `(\d{1,4})(` + sep + `|$)`)
	seasonSingleCNPattern = regexp.MustCompile(`第\s*(` + num + `)\s*季`)
	seasonSingleENPattern = regexp.MustCompile(`(?i)(^|` + sep + `)` + seasonEN + `(\d{1,4})(` + sep + `|$)`)

	// 集:范围、单集
	episodeRangeCNPattern  = regexp.MustCompile(`第\s*(` + num + `)\s*` + episodCN + `?` + joiner + `+第?\s*(` + num + `)\s*` + episodCN)
	episodeRangeENPattern  = regexp.MustCompile(`(?i)(^|` + sep + `)` + episodEN + `(\d{1,4})` + joiner + `*` + episodEN + `(\d{1,4})(` + sep + `|$)`)
	episodeSingleCNPattern = regexp.MustCompile(`第\s*(` + num + `)\s*` + episodCN)
	episodeSingleENPattern = regexp.MustCompile(`(?i)(^|` + sep + `)` + episodEN + `(\d{1,4})(` + sep + `|$)`)

	// 全N季 / 共N集
	entireSeasonPattern  = regexp.MustCompile(`[全共]\s*(` + num + `)\s*季`)
	entireEpisodePattern = regexp.MustCompile(`[全共]\s*(` + num + `)\s*` + episodCN)

	// 年份区间 1999.2000
	yearRangePattern = regexp.MustCompile(`(^|[.\s_])((?:19|20)\d{2})` + joiner + `((?:19|20)\d{2})([.\s_]|$)`)

	// 噪声
	seasonalAnimePattern = regexp.MustCompile(`\d{1,2}月新番`)
	multiAudioPattern    = regexp.MustCompile(`(?i)\d+Audios?`)
	yearRangeNoise       = regexp.MustCompile(`(?:19|20)\d{2}\.(?:19|20)\d{2}`)

	// 动画风格的 " - 01" 集数
	animeEpisodePattern = regexp.MustCompile(`[\s_]-[\s_](\d{1,4})(?:[vV]\d)?([\s_\[.]|$)`)

	// 结尾的 -GROUP,要求前面是数字或右括号,避免误伤 Spider-Man 这类片名
	trailingGroupPattern = regexp.MustCompile(`[\d\])][\s_.]*-[\s_]*([A-Za-z0-9][A-Za-z0-9@&]*)(?:\.[A-Za-z0-9]{2,4})?$`)
)
