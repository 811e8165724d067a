package desktop

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/awsl-project/localnotes/internal/config"
	"github.com/awsl-project/localnotes/internal/logging"
	"github.com/awsl-project/localnotes/internal/store"
	"github.com/awsl-project/localnotes/internal/transfer"
	"github.com/awsl-project/localnotes/internal/version"
	"github.com/awsl-project/localnotes/internal/window"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App 绑定到前端的桌面应用
// 导出的方法即前端可以调用的命令
type App struct {
	cfg config.Config
	log zerolog.Logger
	db  *store.DB

	host     *wailsHost
	windows  *window.Controller
	transfer *transfer.Service
	tray     *TrayManager

	quitting atomic.Bool
}

// NewApp 创建桌面应用，db 可以为 nil（数据库打开失败时仍可导出）
func NewApp(cfg config.Config, log zerolog.Logger, db *store.DB) *App {
	a := &App{
		cfg: cfg,
		log: logging.Component(log, "app"),
		db:  db,
	}
	a.host = newWailsHost(a.exit)
	a.windows = window.NewController(a.host, log)

	opts := []transfer.Option{transfer.WithLogger(log)}
	if db != nil {
		opts = append(opts, transfer.WithDatabase(db))
	}
	a.transfer = transfer.NewService(transfer.StaticDataDir(cfg.DataDir), opts...)
	a.tray = NewTrayManager(NewMenuDispatcher(a.windows, log), log)
	return a
}

// Startup Wails OnStartup 回调
func (a *App) Startup(ctx context.Context) {
	a.host.attach(ctx, !a.cfg.Window.StartHidden)
	a.log.Info().Str("version", version.Info()).Str("data_dir", a.cfg.DataDir).Msg("Application started")

	// 托盘在独立的 goroutine 中运行，避免阻塞主线程
	go a.tray.Start()
}

// DomReady Wails OnDomReady 回调
func (a *App) DomReady(ctx context.Context) {
	a.log.Debug().Msg("DOM ready")
}

// BeforeClose 关闭主窗口时隐藏到托盘，返回 true 阻止关闭
func (a *App) BeforeClose(ctx context.Context) bool {
	if a.quitting.Load() || !trayAvailable || !a.cfg.Window.CloseToTray {
		a.log.Info().Msg("Window close requested")
		return false
	}
	a.log.Info().Msg("Window close requested - hiding to tray")
	a.windows.HideMain()
	return true
}

// Shutdown Wails OnShutdown 回调
func (a *App) Shutdown(ctx context.Context) {
	a.tray.Stop()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn().Err(err).Msg("Failed to close database")
		}
	}
	a.log.Info().Msg("Application stopped")
}

// SecondInstance 再次启动应用时显示已运行实例的主窗口
func (a *App) SecondInstance(data options.SecondInstanceData) {
	a.log.Info().Strs("args", data.Args).Msg("Second instance launched")
	a.windows.ShowMain()
}

// exit 托盘“退出”：允许关闭窗口并结束进程
func (a *App) exit(code int) {
	a.quitting.Store(true)
	ctx := a.host.context()
	if ctx == nil || code != 0 {
		os.Exit(code)
	}
	runtime.Quit(ctx)
}

// ShowMainWindow 显示主窗口
func (a *App) ShowMainWindow() {
	a.windows.ShowMain()
}

// HideMainWindow 隐藏主窗口
func (a *App) HideMainWindow() {
	a.windows.HideMain()
}

// ExportNoteToMarkdown 导出单篇笔记为 Markdown 文件
func (a *App) ExportNoteToMarkdown(title, content, filePath string) error {
	return a.run("export_note_to_markdown", filePath, func() error {
		return a.transfer.ExportNote(title, content, filePath)
	})
}

// ExportAllNotesToMarkdown 导出全部笔记到一个 Markdown 文件
func (a *App) ExportAllNotesToMarkdown(notesJSON, filePath string) error {
	return a.run("export_all_notes_to_markdown", filePath, func() error {
		return a.transfer.ExportAllNotes(notesJSON, filePath)
	})
}

// BackupDatabase 备份数据库到指定文件
func (a *App) BackupDatabase(filePath string) error {
	return a.run("backup_database", filePath, func() error {
		return a.transfer.Backup(filePath)
	})
}

// RestoreDatabase 从备份文件恢复数据库
func (a *App) RestoreDatabase(filePath string) error {
	return a.run("restore_database", filePath, func() error {
		_, err := a.transfer.Restore(filePath)
		return err
	})
}

// Version 应用版本
func (a *App) Version() string {
	return version.Full()
}

// run 执行命令并记录耗时，错误原样返回给前端
func (a *App) run(op, path string, fn func() error) error {
	log := a.log.With().Str("op", op).Str("id", uuid.NewString()).Str("path", path).Logger()
	start := time.Now()

	err := fn()
	if err != nil {
		log.Error().Err(err).Dur("duration", time.Since(start)).Msg("Command failed")
		return err
	}
	log.Info().Dur("duration", time.Since(start)).Msg("Command completed")
	return nil
}
