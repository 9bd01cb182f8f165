package meta

import (
	"fmt"
	"strconv"
	"strings"
)

// TagKind 打标值的形态
type TagKind int

const (
	TagAbsent TagKind = iota
	TagScalar
	TagList
)

// TagValue 打标器输出的单个值:缺失、标量或列表
// 在构造 MediaItem 时一次性确定形态,合并阶段不再检查原始类型
type TagValue struct {
	kind   TagKind
	scalar string
	list   []string
}

// Absent 缺失值
func Absent() TagValue { return TagValue{} }

// Scalar 标量值,空串视为缺失
func Scalar(s string) TagValue {
	s = strings.TrimSpace(s)
	if s == "" {
		return TagValue{}
	}
	return TagValue{kind: TagScalar, scalar: s}
}

// ListOf 列表值,过滤空元素;只剩空列表时视为缺失
func ListOf(items ...string) TagValue {
	list := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return TagValue{}
	}
	return TagValue{kind: TagList, list: list}
}

// TagValueOf 将打标器的任意输出转换为 TagValue
// 无法识别的类型按缺失处理
func TagValueOf(v any) TagValue {
	switch val := v.(type) {
	case nil:
		return Absent()
	case TagValue:
		return val
	case string:
		return Scalar(val)
	case int:
		return Scalar(strconv.Itoa(val))
	case int64:
		return Scalar(strconv.FormatInt(val, 10))
	case float64:
		return Scalar(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		if val {
			return Scalar("true")
		}
		return Absent()
	case []string:
		return ListOf(val...)
	case []int:
		items := make([]string, len(val))
		for i, n := range val {
			items[i] = strconv.Itoa(n)
		}
		return ListOf(items...)
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			switch item.(type) {
			case string, int, int64, float64:
				items = append(items, fmt.Sprint(item))
			}
		}
		return ListOf(items...)
	case fmt.Stringer:
		return Scalar(val.String())
	default:
		return Absent()
	}
}

func (t TagValue) Kind() TagKind { return t.kind }

// IsAbsent 是否缺失
func (t TagValue) IsAbsent() bool { return t.kind == TagAbsent }

// IsList 是否为非空列表
func (t TagValue) IsList() bool { return t.kind == TagList }

// IsScalar 是否为非空标量
func (t TagValue) IsScalar() bool { return t.kind == TagScalar }

// Scalar 标量内容,列表返回首个元素
func (t TagValue) Scalar() string {
	switch t.kind {
	case TagScalar:
		return t.scalar
	case TagList:
		return t.list[0]
	}
	return ""
}

// List 列表内容的副本,标量返回单元素列表
func (t TagValue) List() []string {
	switch t.kind {
	case TagList:
		return append([]string(nil), t.list...)
	case TagScalar:
		return []string{t.scalar}
	}
	return nil
}

// String 标量原样返回,列表以空格连接
func (t TagValue) String() string {
	switch t.kind {
	case TagScalar:
		return t.scalar
	case TagList:
		return strings.Join(t.list, " ")
	}
	return ""
}

// export 序列化形式:缺失为空串,列表为 []string
func (t TagValue) export() any {
	if t.kind == TagList {
		return t.List()
	}
	return t.String()
}
