package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"

	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/bytedance/sonic"
)

var errNotArray = errors.New("expected a JSON array of notes")

// ExportNote 导出单篇笔记，覆盖目标文件
func (s *Service) ExportNote(title, content, path string) error {
	doc := RenderNote(title, content, s.clock())
	if err := writeFile(path, doc); err != nil {
		return domain.NewExportError(err)
	}
	s.log.Info().Str("path", path).Int("bytes", len(doc)).Msg("Exported note")
	return nil
}

// ExportAllNotes 解析前端传入的笔记数组并合并导出为一个文件
// 单条记录字段缺失或类型错误时使用默认值，不会中断整个导出
func (s *Service) ExportAllNotes(notesJSON, path string) error {
	notes, err := ParseNotes(notesJSON)
	if err != nil {
		return err
	}
	return s.ExportNotes(notes, path)
}

// ExportNotes 将已解析的笔记合并导出为一个文件
func (s *Service) ExportNotes(notes []domain.Note, path string) error {
	doc := RenderNotes(notes, s.clock())
	if err := writeFile(path, doc); err != nil {
		return domain.NewExportError(err)
	}
	s.log.Info().Str("path", path).Int("notes", len(notes)).Msg("Exported notes")
	return nil
}

// ParseNotes 解析笔记 JSON 数组
// 输入不是合法 JSON 或顶层不是数组时返回 ParseError
func ParseNotes(notesJSON string) ([]domain.Note, error) {
	data := bytes.TrimSpace([]byte(notesJSON))
	if len(data) == 0 || data[0] != '[' {
		if !sonic.Valid(data) {
			return nil, domain.NewParseError(errors.New("invalid JSON"))
		}
		return nil, domain.NewParseError(errNotArray)
	}

	var items []json.RawMessage
	if err := sonic.Unmarshal(data, &items); err != nil {
		return nil, domain.NewParseError(err)
	}

	notes := make([]domain.Note, 0, len(items))
	for _, item := range items {
		var rec domain.NoteRecord
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '{' {
			// 字段级错误已在 OptionalString 中吸收
			_ = sonic.Unmarshal(item, &rec)
		}
		notes = append(notes, rec.Resolve())
	}
	return notes, nil
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
