package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrClosed 数据库已释放（恢复进行中或已关闭）
var ErrClosed = errors.New("database is closed")

// DB 主数据库 notes.db 的连接
// 恢复数据库时需要先释放文件再重新打开，因此连接可以被替换
type DB struct {
	path string
	log  zerolog.Logger

	mu   sync.RWMutex
	gorm *gorm.DB
}

// Open 打开（必要时创建）SQLite 数据库并迁移表结构
func Open(path string, log zerolog.Logger) (*DB, error) {
	d := &DB{
		path: path,
		log:  log.With().Str("component", "store").Logger(),
	}
	if err := d.open(); err != nil {
		return nil, err
	}
	return d, nil
}

// Path 数据库文件路径
func (d *DB) Path() string {
	return d.path
}

func (d *DB) open() error {
	// WAL 模式 + 忙等待，避免前端并发读写时报 database is locked
	dsn := d.path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(30000)"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := gormDB.AutoMigrate(&Note{}); err != nil {
		sqlDB.Close()
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	d.gorm = gormDB
	d.log.Info().Str("path", d.path).Msg("Database connection established")
	return nil
}

// Checkpoint 将 WAL 内容写回主文件，使文件级备份包含全部已提交数据
func (d *DB) Checkpoint() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.gorm == nil {
		return ErrClosed
	}
	return d.gorm.Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error
}

// Release 关闭连接，释放数据库文件
func (d *DB) Release() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closeLocked()
}

// Reopen 重新打开数据库文件
func (d *DB) Reopen() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gorm != nil {
		if err := d.closeLocked(); err != nil {
			return err
		}
	}
	return d.open()
}

// Close 关闭数据库
func (d *DB) Close() error {
	return d.Release()
}

func (d *DB) closeLocked() error {
	if d.gorm == nil {
		return nil
	}
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}
	d.gorm = nil
	d.log.Info().Str("path", d.path).Msg("Database connection released")
	return nil
}

// ListNotes 按创建时间列出全部笔记
func (d *DB) ListNotes() ([]domain.Note, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.gorm == nil {
		return nil, ErrClosed
	}

	var rows []Note
	if err := d.gorm.Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	notes := make([]domain.Note, 0, len(rows))
	for _, r := range rows {
		notes = append(notes, r.toDomain())
	}
	return notes, nil
}

// CreateNote 写入一条笔记
func (d *DB) CreateNote(title, content string) (*Note, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.gorm == nil {
		return nil, ErrClosed
	}

	n := &Note{Title: title, Content: content}
	if err := d.gorm.Create(n).Error; err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return n, nil
}
