package strutil

import "regexp"

// 通用的预编译正则,元信息解析相关的规则放在 metainfo 包内

var (
	// 含点的分隔符序列,如 "..", " . ", "_._"
	DotRunPattern = regexp.MustCompile(`[\s_]*\.[\s_.]*`)

	// 文件大小 700MB, 1.5GiB, 4.37 GB
	FileSizePattern = regexp.MustCompile(`(?i)(?:^|[.\s_\[(])\d+(?:\.\d+)?\s*[KMGT]i?B(?:[.\s_\])]|$)`)

	// 日期 2024-01-05, 2024.01.05, 2024_01_05
	DatePattern = regexp.MustCompile(`(?:^|[^\d])((?:19|20)\d{2}[-._](?:0?[1-9]|1[0-2])[-._](?:0?[1-9]|[12]\d|3[01]))(?:[^\d]|$)`)
)
