package domain

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// DefaultNoteTitle 笔记缺少标题时使用的占位标题
const DefaultNoteTitle = "无标题"

// OptionalString 可缺省的字符串字段
// 缺失、null 或类型不是字符串时 Valid 为 false，解码永远不会失败
type OptionalString struct {
	Value string
	Valid bool
}

// Some 构造一个有值的 OptionalString
func Some(v string) OptionalString {
	return OptionalString{Value: v, Valid: true}
}

// Or 有值时返回值，否则返回 fallback
func (s OptionalString) Or(fallback string) string {
	if s.Valid {
		return s.Value
	}
	return fallback
}

// UnmarshalJSON 实现 json.Unmarshaler
func (s *OptionalString) UnmarshalJSON(data []byte) error {
	*s = OptionalString{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var v string
	if err := sonic.Unmarshal(data, &v); err != nil {
		// 类型不匹配时按缺省处理
		return nil
	}
	s.Value, s.Valid = v, true
	return nil
}

// NoteRecord 前端传入的笔记记录（只读视图）
type NoteRecord struct {
	Title     OptionalString `json:"title"`
	Content   OptionalString `json:"content"`
	CreatedAt OptionalString `json:"created_at"`
}

// Note 导出使用的笔记，所有字段已替换为默认值
type Note struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Resolve 将缺省字段替换为默认值
func (r NoteRecord) Resolve() Note {
	return Note{
		Title:     r.Title.Or(DefaultNoteTitle),
		Content:   r.Content.Or(""),
		CreatedAt: r.CreatedAt.Or(""),
	}
}
