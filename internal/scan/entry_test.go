package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmur/hefty/internal/diag"
)

func TestEntrySize_FailSoft(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doomed")
	writeSized(t, path, 4096)

	var events []diag.Event
	notify := func(ev diag.Event) { events = append(events, ev) }

	entries := Find(dir, DefaultOptions(), notify).Entries()
	require.Len(t, entries, 1)
	require.Empty(t, events)

	// Node vanishes between discovery and the size query.
	require.NoError(t, os.Remove(path))

	assert.Equal(t, int64(0), entries[0].Size())
	require.Len(t, events, 1)
	assert.Equal(t, diag.SizeError, events[0].Type)
	assert.Equal(t, diag.LabelNotFound, events[0].Label)
	assert.Equal(t, path, events[0].Path)

	// Uncached: a second query re-reports.
	assert.Equal(t, int64(0), entries[0].Size())
	assert.Len(t, events, 2)
}

func TestEntrySize_Uncached(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "growing")
	writeSized(t, path, 100)

	entries := Find(dir, DefaultOptions(), nil).Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(100), entries[0].Size())

	writeSized(t, path, 200)
	assert.Equal(t, int64(200), entries[0].Size())
}

func TestEntrySize_SymlinkNotFollowed(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, filepath.Join(dir, "target"), 4096)
	require.NoError(t, os.Symlink("target", filepath.Join(dir, "link")))

	entries := Find(dir, DefaultOptions(), nil).SortAscending().Entries()
	require.Len(t, entries, 2)

	// Lstat of the link reports the target path length, not 4096.
	assert.Equal(t, Symlink, entries[0].Kind)
	assert.Equal(t, int64(len("target")), entries[0].Size())
}

func TestEntryModTime_FailSoft(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doomed")
	writeSized(t, path, 1)

	entries := Find(dir, DefaultOptions(), nil).Entries()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].ModTime().IsZero())

	require.NoError(t, os.Remove(path))
	assert.True(t, entries[0].ModTime().IsZero())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "File", File.String())
	assert.Equal(t, "Dir", Dir.String())
	assert.Equal(t, "Symlink", Symlink.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}
