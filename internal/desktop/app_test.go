package desktop

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/awsl-project/localnotes/internal/config"
	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	return NewApp(cfg, zerolog.Nop(), nil), cfg.DataDir
}

func TestApp_WindowCommandsBeforeStartup(t *testing.T) {
	app, _ := newTestApp(t)

	// the window does not exist until Wails calls Startup
	assert.NotPanics(t, func() {
		app.ShowMainWindow()
		app.HideMainWindow()
	})
	_, ok := app.host.Window(domain.MainWindowName)
	assert.False(t, ok)
}

func TestWailsHost_OnlyMainWindow(t *testing.T) {
	host := newWailsHost(func(int) {})
	host.attach(context.Background(), true)

	_, ok := host.Window("settings")
	assert.False(t, ok)

	w, ok := host.Window(domain.MainWindowName)
	require.True(t, ok)
	visible, err := w.IsVisible()
	require.NoError(t, err)
	assert.True(t, visible)
}

func TestApp_ExportCommands(t *testing.T) {
	app, _ := newTestApp(t)
	out := t.TempDir()

	require.NoError(t, app.ExportNoteToMarkdown("T", "C", filepath.Join(out, "one.md")))
	require.NoError(t, app.ExportAllNotesToMarkdown(`[{"title":"A"}]`, filepath.Join(out, "all.md")))

	err := app.ExportAllNotesToMarkdown("not json", filepath.Join(out, "bad.md"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrParse))
	assert.NoFileExists(t, filepath.Join(out, "bad.md"))
}

func TestApp_BackupRestoreCommands(t *testing.T) {
	app, dataDir := newTestApp(t)
	backup := filepath.Join(t.TempDir(), "backup.db")

	err := app.BackupDatabase(backup)
	require.Error(t, err)
	assert.Equal(t, "数据库文件不存在", err.Error())

	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "notes.db"), []byte("db v1"), 0o644))
	require.NoError(t, app.BackupDatabase(backup))

	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "notes.db"), []byte("db v2"), 0o644))
	require.NoError(t, app.RestoreDatabase(backup))

	data, err := os.ReadFile(filepath.Join(dataDir, "notes.db"))
	require.NoError(t, err)
	assert.Equal(t, "db v1", string(data))

	snapshots, err := filepath.Glob(filepath.Join(dataDir, "notes_backup_*.db"))
	require.NoError(t, err)
	assert.Len(t, snapshots, 1)

	err = app.RestoreDatabase(filepath.Join(t.TempDir(), "missing.db"))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestApp_BeforeClose(t *testing.T) {
	app, _ := newTestApp(t)

	app.cfg.Window.CloseToTray = false
	assert.False(t, app.BeforeClose(context.Background()))

	app.cfg.Window.CloseToTray = true
	app.quitting.Store(true)
	assert.False(t, app.BeforeClose(context.Background()))

	app.quitting.Store(false)
	assert.Equal(t, trayAvailable, app.BeforeClose(context.Background()))
}
