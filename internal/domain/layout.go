package domain

import (
	"fmt"
	"time"
)

const (
	// AppID 应用标识，用作数据目录名和单实例锁
	AppID = "com.awsl.localnotes"

	// MainWindowName 主窗口名称，主窗口是唯一的
	MainWindowName = "main"

	// DatabaseFileName 数据目录中的主数据库文件
	DatabaseFileName = "notes.db"

	// LogFileName 数据目录中的日志文件
	LogFileName = "localnotes.log"

	// ConfigFileName 数据目录中的可选配置文件
	ConfigFileName = "config.yaml"

	// TrayTooltip 托盘提示文字
	TrayTooltip = "本地笔记"
)

// Timestamp layouts used in exports and snapshot names.
const (
	ExportTimeLayout   = "2006-01-02 15:04:05 UTC"
	SnapshotTimeLayout = "20060102_150405"
)

// FormatExportTime 导出文件中的时间戳，始终使用 UTC
func FormatExportTime(t time.Time) string {
	return t.UTC().Format(ExportTimeLayout)
}

// SnapshotFileName 恢复前安全快照的文件名
// seq 为 0 时返回 notes_backup_<YYYYMMDD_HHMMSS>.db，否则追加 _<seq> 避免覆盖
func SnapshotFileName(t time.Time, seq int) string {
	stamp := t.UTC().Format(SnapshotTimeLayout)
	if seq == 0 {
		return fmt.Sprintf("notes_backup_%s.db", stamp)
	}
	return fmt.Sprintf("notes_backup_%s_%d.db", stamp, seq)
}
