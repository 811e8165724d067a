package transfer

import (
	"strings"
	"time"

	"github.com/awsl-project/localnotes/internal/domain"
)

// RenderNote 单篇笔记的 Markdown：标题、正文、分隔线和导出时间
func RenderNote(title, content string, exportedAt time.Time) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n\n---\n\n*导出时间: ")
	b.WriteString(domain.FormatExportTime(exportedAt))
	b.WriteString("*")
	return b.String()
}

// RenderNotes 多篇笔记合并导出的 Markdown，按输入顺序排列
func RenderNotes(notes []domain.Note, exportedAt time.Time) string {
	var b strings.Builder
	b.WriteString("# 笔记导出\n\n")
	b.WriteString("导出时间: ")
	b.WriteString(domain.FormatExportTime(exportedAt))
	b.WriteString("\n\n---\n\n")

	for _, n := range notes {
		b.WriteString("## ")
		b.WriteString(n.Title)
		b.WriteString("\n\n*创建时间: ")
		b.WriteString(n.CreatedAt)
		b.WriteString("*\n\n")
		b.WriteString(n.Content)
		b.WriteString("\n\n---\n\n")
	}
	return b.String()
}
