package ui_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmur/hefty/internal/scan"
	"github.com/calebmur/hefty/internal/stats"
	"github.com/calebmur/hefty/internal/ui"
)

func rankedEntries(t *testing.T) (string, []scan.Entry) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big"), make([]byte, 204800), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny"), make([]byte, 11), 0o644))

	entries := scan.Find(dir, scan.DefaultOptions(), nil).SortDescending().Entries()
	require.Len(t, entries, 2)
	return dir, entries
}

func TestTable_AlignedPlainOutput(t *testing.T) {
	dir, entries := rankedEntries(t)

	var buf bytes.Buffer
	p := ui.Printer{W: &buf, Color: false, Base: dir}
	require.NoError(t, p.Table(entries))

	assert.Equal(t, "200 KiB  big\n   11 B  tiny\n", buf.String())
}

func TestJSON_Records(t *testing.T) {
	dir, entries := rankedEntries(t)

	var buf bytes.Buffer
	p := ui.Printer{W: &buf, Color: false, Base: dir}
	require.NoError(t, p.JSON(entries))

	var records []struct {
		Path  string `json:"path"`
		Kind  string `json:"kind"`
		Depth int    `json:"depth"`
		Size  int64  `json:"size"`
		Human string `json:"human_size"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)

	assert.Equal(t, "big", records[0].Path)
	assert.Equal(t, "File", records[0].Kind)
	assert.Equal(t, 1, records[0].Depth)
	assert.Equal(t, int64(204800), records[0].Size)
	assert.Equal(t, "200 KiB", records[0].Human)

	assert.Equal(t, "tiny", records[1].Path)
	assert.Equal(t, int64(11), records[1].Size)
}

func TestSummary(t *testing.T) {
	p := ui.Printer{Color: false}
	line := p.Summary(stats.Snapshot{
		Files:      5,
		Dirs:       2,
		Links:      1,
		Bytes:      1 << 20,
		WalkErrors: 1,
		SizeErrors: 1,
		Elapsed:    12 * time.Millisecond,
	})

	assert.Equal(t, "8 entries (5 files, 2 dirs, 1 links), 1.0 MiB total, 2 errors, 12ms", line)
}
