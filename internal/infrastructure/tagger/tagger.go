// Package tagger 将第三方发布名解析库适配为扁平的打标结果。
package tagger

import (
	"fmt"
	"strings"

	"github.com/easayliu/alist-aria2-metainfo/internal/domain/models/meta"
	"github.com/easayliu/alist-aria2-metainfo/internal/domain/services/metainfo"
	"github.com/easayliu/alist-aria2-metainfo/pkg/logger"
)

const (
	NameRLS = "rls"
	NamePTT = "ptt"
	NamePTN = "ptn"
)

// New 按名称创建打标器,空名称使用 rls
func New(name string) (metainfo.Tagger, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameRLS:
		return NewRLSTagger(), nil
	case NamePTT:
		return NewPTTTagger(), nil
	case NamePTN:
		return NewPTNTagger(), nil
	default:
		return nil, fmt.Errorf("unknown tagger: %s", name)
	}
}

// Names 可用的打标器名称
func Names() []string {
	return []string{NameRLS, NamePTT, NamePTN}
}

// safeTag 第三方库出现 panic 时返回空结果
func safeTag(name, text string, fn func(string) meta.Tags) (tags meta.Tags) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("tagger panicked, treat as no signal", "tagger", name, "text", text, "panic", r)
			tags = meta.Tags{}
		}
	}()
	return fn(text)
}

// tagBuilder 只写入非零值
type tagBuilder meta.Tags

func (b tagBuilder) str(key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		b[key] = value
	}
}

func (b tagBuilder) num(key string, value int) {
	if value > 0 {
		b[key] = value
	}
}

func (b tagBuilder) nums(key string, values []int) {
	var out []int
	for _, v := range values {
		if v > 0 {
			out = append(out, v)
		}
	}
	switch len(out) {
	case 0:
	case 1:
		b[key] = out[0]
	default:
		b[key] = out
	}
}

func (b tagBuilder) list(key string, values ...[]string) {
	var out []string
	for _, vs := range values {
		for _, v := range vs {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	switch len(out) {
	case 0:
	case 1:
		b[key] = out[0]
	default:
		b[key] = out
	}
}
