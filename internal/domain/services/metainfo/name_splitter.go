package metainfo

import (
	"strings"

	"github.com/easayliu/alist-aria2-metainfo/pkg/utils/segment"
	strutil "github.com/easayliu/alist-aria2-metainfo/pkg/utils/string"
)

// TokenSource 单向的词元序列,耗尽时返回 false
type TokenSource interface {
	Next() (string, bool)
}

// SplitMixedName 将中英混合的名称拆为中文名与英文名
func SplitMixedName(s string) (cn, en string) {
	return splitTokens(segment.New(s))
}

func splitTokens(tokens TokenSource) (string, string) {
	var cn, en strings.Builder
	for {
		tok, ok := tokens.Next()
		if !ok {
			break
		}
		if strutil.IsAllChinese(tok) {
			cn.WriteString(tok)
			cn.WriteByte(' ')
		} else {
			en.WriteString(tok)
			en.WriteByte(' ')
		}
	}
	return strings.TrimSpace(cn.String()), strings.TrimSpace(en.String())
}
