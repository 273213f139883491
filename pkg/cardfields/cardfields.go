// Package cardfields 卡片描述的两种形态: 纯文本或有序的 key/value 字段.
//
// 旧客户端把字段写在 description 里, 可能是 JSON 数组, 也可能是逐行的 "key: value".
// Normalize 识别这两种写法, 入库的卡片总带明确的 kind.
package cardfields

import (
	"strings"

	"github.com/tidwall/gjson"
)

const (
	KindText   = "text"
	KindFields = "fields"
)

type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Description 规整后的卡片描述
type Description struct {
	Kind   string
	Text   string
	Fields []Field
}

// Normalize 显式传入的 fields 优先, 其次尝试解析旧格式, 否则按纯文本保存
func Normalize(text string, fields []Field) Description {
	if fields != nil {
		return Description{Kind: KindFields, Fields: Clean(fields)}
	}
	if parsed, ok := ParseLegacy(text); ok {
		return Description{Kind: KindFields, Fields: parsed}
	}
	return Description{Kind: KindText, Text: text}
}

// ParseLegacy 解析旧格式: [{"key":"..","value":".."}] 或每个非空行都带冒号的 "key: value" 文本
func ParseLegacy(text string) ([]Field, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return parseLines(trimmed)
	}
	if !gjson.Valid(trimmed) {
		return nil, false
	}

	fields := make([]Field, 0)
	ok := true
	gjson.Parse(trimmed).ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			ok = false
			return false
		}
		fields = append(fields, Field{
			Key:   item.Get("key").String(),
			Value: item.Get("value").String(),
		})
		return true
	})
	if !ok {
		return nil, false
	}
	return Clean(fields), true
}

// Clean 去掉首尾空白, 丢弃 key 或 value 为空的项
func Clean(fields []Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		f.Key = strings.TrimSpace(f.Key)
		f.Value = strings.TrimSpace(f.Value)
		if f.Key == "" || f.Value == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// parseLines 按行切分, 每行以第一个冒号分隔 key 和 value. 有一行不带冒号就视为纯文本
func parseLines(text string) ([]Field, bool) {
	if text == "" {
		return nil, false
	}
	fields := make([]Field, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, false
		}
		fields = append(fields, Field{Key: key, Value: value})
	}
	fields = Clean(fields)
	if len(fields) == 0 {
		return nil, false
	}
	return fields, true
}
