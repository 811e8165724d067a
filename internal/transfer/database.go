package transfer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/awsl-project/localnotes/internal/domain"
)

// maxSnapshotSeq 同一秒内快照文件名的最大序号
const maxSnapshotSeq = 1000

// DatabasePath 返回数据目录中主数据库文件的路径
func (s *Service) DatabasePath() (string, error) {
	dir, err := s.dataDir.DataDir()
	if err != nil {
		return "", domain.NewDataDirError(err)
	}
	return filepath.Join(dir, domain.DatabaseFileName), nil
}

// Backup 将主数据库文件逐字节复制到 dst，覆盖已有文件
// 复制失败时 dst 可能被截断或不存在，任何错误都表示备份不可用
func (s *Service) Backup(dst string) error {
	dbPath, err := s.DatabasePath()
	if err != nil {
		return err
	}
	if !exists(dbPath) {
		return domain.NewNotFoundError("数据库文件不存在")
	}

	if s.db != nil {
		if err := s.db.Checkpoint(); err != nil {
			s.log.Warn().Err(err).Msg("WAL checkpoint failed, backing up main file as is")
		}
	}

	n, err := copyFile(dbPath, dst)
	if err != nil {
		return domain.NewCopyError("备份数据库失败", err)
	}
	s.log.Info().Str("src", dbPath).Str("dst", dst).Int64("bytes", n).Msg("Database backed up")
	return nil
}

// Restore 用 src 覆盖主数据库文件
// 已有数据库时先在数据目录中保存带时间戳的安全快照，快照失败则放弃恢复。
// 返回快照路径，没有旧数据库时为空。
func (s *Service) Restore(src string) (string, error) {
	if !exists(src) {
		return "", domain.NewNotFoundError("备份文件不存在")
	}

	dbPath, err := s.DatabasePath()
	if err != nil {
		return "", err
	}

	var snapshot string
	if exists(dbPath) {
		if s.db != nil {
			if err := s.db.Checkpoint(); err != nil {
				s.log.Warn().Err(err).Msg("WAL checkpoint failed before snapshot")
			}
		}
		snapshot, err = s.snapshotPath(filepath.Dir(dbPath))
		if err != nil {
			return "", domain.NewCopyError("备份当前数据库失败", err)
		}
		if _, err := copyFile(dbPath, snapshot); err != nil {
			return "", domain.NewCopyError("备份当前数据库失败", err)
		}
		s.log.Info().Str("snapshot", snapshot).Msg("Safety snapshot created")
	}

	if s.db != nil {
		if err := s.db.Release(); err != nil {
			return snapshot, domain.NewCopyError("恢复数据库失败", fmt.Errorf("release database: %w", err))
		}
		defer func() {
			if err := s.db.Reopen(); err != nil {
				s.log.Error().Err(err).Msg("Failed to reopen database after restore")
			}
		}()
	}

	n, err := copyFile(src, dbPath)
	if err != nil {
		return snapshot, domain.NewCopyError("恢复数据库失败", err)
	}
	s.log.Info().Str("src", src).Str("dst", dbPath).Int64("bytes", n).Msg("Database restored")
	return snapshot, nil
}

// snapshotPath 选择一个不存在的快照文件名
func (s *Service) snapshotPath(dir string) (string, error) {
	now := s.clock()
	for seq := 0; seq < maxSnapshotSeq; seq++ {
		p := filepath.Join(dir, domain.SnapshotFileName(now, seq))
		if !exists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("no free snapshot name for %s", now.Format(domain.SnapshotTimeLayout))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// copyFile 逐字节复制 src 到 dst，截断已有的 dst 并沿用 src 的权限位
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err == nil {
		err = out.Sync()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}
