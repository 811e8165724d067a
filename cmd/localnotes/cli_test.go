package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/awsl-project/localnotes/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOCALNOTES_DATA_DIR", "")
	t.Setenv("LOCALNOTES_LOG_LEVEL", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "note.md")

	out, err := runCLI(t, "", "--data-dir", dir, "export", "--title", "Hello", "--content", "World", "--out", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported "+dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Hello\n\nWorld\n\n---\n\n*导出时间: "))
}

func TestExportCommandRequiresOut(t *testing.T) {
	_, err := runCLI(t, "", "--data-dir", t.TempDir(), "export", "--title", "x")
	assert.Error(t, err)
}

func TestExportAllFromStdin(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "all.md")

	_, err := runCLI(t, `[{"title":"A","content":"x","created_at":"2024-01-01"},{}]`,
		"--data-dir", dir, "export-all", "--in", "-", "--out", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.HasPrefix(s, "# 笔记导出\n\n"))
	assert.Contains(t, s, "## A\n\n*创建时间: 2024-01-01*\n\nx\n\n---\n\n")
	assert.Contains(t, s, "## 无标题\n\n*创建时间: *\n\n\n\n---\n\n")
}

func TestExportAllParseError(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "all.md")

	_, err := runCLI(t, `{"title":"A"}`, "--data-dir", dir, "export-all", "--in", "-", "--out", dst)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.NoFileExists(t, dst)
}

func TestExportAllFromDB(t *testing.T) {
	dir := t.TempDir()
	db, err := store.Open(filepath.Join(dir, domain.DatabaseFileName), zerolog.Nop())
	require.NoError(t, err)
	_, err = db.CreateNote("stored", "body")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	dst := filepath.Join(dir, "all.md")
	_, err = runCLI(t, "", "--data-dir", dir, "export-all", "--from-db", "--out", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## stored\n\n")
	assert.Contains(t, string(data), "body\n\n---\n\n")
}

func TestExportAllFromMissingDB(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "", "--data-dir", dir, "export-all", "--from-db", "--out", filepath.Join(dir, "all.md"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBackupAndRestoreCommands(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, domain.DatabaseFileName)
	require.NoError(t, os.WriteFile(dbPath, []byte("current"), 0o644))

	backup := filepath.Join(t.TempDir(), "backup.db")
	out, err := runCLI(t, "", "--data-dir", dir, "backup", "--out", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "Backed up")

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "current", string(data))

	src := filepath.Join(t.TempDir(), "other.db")
	require.NoError(t, os.WriteFile(src, []byte("restored"), 0o644))

	out, err = runCLI(t, "", "--data-dir", dir, "restore", "--in", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Previous database saved as")

	data, err = os.ReadFile(dbPath)
	require.NoError(t, err)
	assert.Equal(t, "restored", string(data))

	snapshots, err := filepath.Glob(filepath.Join(dir, "notes_backup_*.db"))
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	data, err = os.ReadFile(snapshots[0])
	require.NoError(t, err)
	assert.Equal(t, "current", string(data))
}

func TestBackupWithoutDatabase(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "b.db")
	_, err := runCLI(t, "", "--data-dir", dir, "backup", "--out", dst)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoFileExists(t, dst)
}

func TestRestoreIntoEmptyDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")
	src := filepath.Join(t.TempDir(), "b.db")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o644))

	out, err := runCLI(t, "", "--data-dir", dir, "restore", "--in", src)
	require.NoError(t, err)
	assert.NotContains(t, out, "Previous database")

	data, err := os.ReadFile(filepath.Join(dir, domain.DatabaseFileName))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "", "--data-dir", t.TempDir(), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "localnotes "))
}
