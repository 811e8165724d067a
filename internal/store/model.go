package store

import (
	"time"

	"github.com/awsl-project/localnotes/internal/domain"
)

// createdAtLayout 与前端 SQL 插件写入的 created_at 文本格式一致
const createdAtLayout = "2006-01-02 15:04:05"

// Note notes 表
type Note struct {
	ID        uint64 `gorm:"primaryKey"`
	Title     string `gorm:"not null;default:''"`
	Content   string `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Note) TableName() string {
	return "notes"
}

func (n Note) toDomain() domain.Note {
	title := n.Title
	if title == "" {
		title = domain.DefaultNoteTitle
	}
	var createdAt string
	if !n.CreatedAt.IsZero() {
		createdAt = n.CreatedAt.UTC().Format(createdAtLayout)
	}
	return domain.Note{
		Title:     title,
		Content:   n.Content,
		CreatedAt: createdAt,
	}
}
