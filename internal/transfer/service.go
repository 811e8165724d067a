// Package transfer moves note content and the notes database between the
// application data directory and locations chosen by the user.
//
// The operations hold no state between calls and take no locks. Two restores
// running at the same time race at the filesystem level and the last copy
// wins.
package transfer

import (
	"time"

	"github.com/rs/zerolog"
)

// DataDirProvider 解析应用私有数据目录
type DataDirProvider interface {
	DataDir() (string, error)
}

// DataDirFunc 函数形式的 DataDirProvider
type DataDirFunc func() (string, error)

func (f DataDirFunc) DataDir() (string, error) { return f() }

// StaticDataDir 固定路径的数据目录
type StaticDataDir string

func (d StaticDataDir) DataDir() (string, error) { return string(d), nil }

// Database 正在使用的数据库连接
// 文件级备份前需要刷写 WAL，恢复时需要先释放文件再重新打开
type Database interface {
	Checkpoint() error
	Release() error
	Reopen() error
}

// Service 文件导出、数据库备份与恢复
type Service struct {
	dataDir DataDirProvider
	db      Database
	now     func() time.Time
	log     zerolog.Logger
}

// Option 配置 Service
type Option func(*Service)

// WithDatabase 设置需要在备份/恢复时协调的数据库连接
func WithDatabase(db Database) Option {
	return func(s *Service) { s.db = db }
}

// WithClock 设置时钟，用于导出时间和快照文件名
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger 设置日志
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService 创建文件传输服务
func NewService(dataDir DataDirProvider, opts ...Option) *Service {
	s := &Service{
		dataDir: dataDir,
		now:     time.Now,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "transfer").Logger()
	return s
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}
