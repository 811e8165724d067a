package store_test

import (
	"path/filepath"
	"testing"

	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/awsl-project/localnotes/internal/store"
	"github.com/awsl-project/localnotes/internal/transfer"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, dir string) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(dir, domain.DatabaseFileName), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestListNotes(t *testing.T) {
	db := openTestDB(t, t.TempDir())

	_, err := db.CreateNote("first", "a")
	require.NoError(t, err)
	_, err = db.CreateNote("", "b")
	require.NoError(t, err)

	notes, err := db.ListNotes()
	require.NoError(t, err)
	require.Len(t, notes, 2)

	assert.Equal(t, "first", notes[0].Title)
	assert.Equal(t, "a", notes[0].Content)
	assert.NotEmpty(t, notes[0].CreatedAt)
	assert.Equal(t, domain.DefaultNoteTitle, notes[1].Title)
}

func TestReleaseAndReopen(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	_, err := db.CreateNote("kept", "")
	require.NoError(t, err)

	require.NoError(t, db.Release())
	_, err = db.ListNotes()
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.ErrorIs(t, db.Checkpoint(), store.ErrClosed)

	// releasing twice is harmless
	require.NoError(t, db.Release())

	require.NoError(t, db.Reopen())
	notes, err := db.ListNotes()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "kept", notes[0].Title)
}

func TestBackupAndRestoreLiveDatabase(t *testing.T) {
	dataDir := t.TempDir()
	db := openTestDB(t, dataDir)
	svc := transfer.NewService(transfer.StaticDataDir(dataDir), transfer.WithDatabase(db))

	_, err := db.CreateNote("before backup", "")
	require.NoError(t, err)

	backup := filepath.Join(t.TempDir(), "backup.db")
	require.NoError(t, svc.Backup(backup))

	_, err = db.CreateNote("after backup", "")
	require.NoError(t, err)
	notes, err := db.ListNotes()
	require.NoError(t, err)
	require.Len(t, notes, 2)

	snapshot, err := svc.Restore(backup)
	require.NoError(t, err)
	assert.NotEmpty(t, snapshot)

	notes, err = db.ListNotes()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "before backup", notes[0].Title)

	// the snapshot holds the state from before the restore
	snap, err := store.Open(snapshot, zerolog.Nop())
	require.NoError(t, err)
	defer snap.Close()
	snapNotes, err := snap.ListNotes()
	require.NoError(t, err)
	assert.Len(t, snapNotes, 2)
}
