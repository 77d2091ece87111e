package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyChainKeepsAll(t *testing.T) {
	c := New()
	assert.True(t, c.Empty())
	assert.True(t, c.Keep("any/file.txt", false, 1024))
	assert.True(t, c.Keep("any/dir", true, 0))
}

func TestExcludePattern(t *testing.T) {
	c := New()
	require.NoError(t, c.Exclude("*.log"))

	assert.False(t, c.Keep("app.log", false, 100))
	assert.False(t, c.Keep("sub/debug.log", false, 100))
	assert.True(t, c.Keep("app.txt", false, 100))
}

func TestIncludeShieldsFromLaterExclude(t *testing.T) {
	c := New()
	require.NoError(t, c.Include("important.log"))
	require.NoError(t, c.Exclude("*.log"))

	assert.True(t, c.Keep("important.log", false, 100))
	assert.False(t, c.Keep("debug.log", false, 100))
}

func TestFirstMatchWins(t *testing.T) {
	c := New()
	require.NoError(t, c.Exclude("*.log"))
	require.NoError(t, c.Include("important.log"))

	// The exclude was added first, so it also catches important.log.
	assert.False(t, c.Keep("important.log", false, 100))
}

func TestDirOnlyPattern(t *testing.T) {
	c := New()
	require.NoError(t, c.Exclude("build/"))

	assert.False(t, c.Keep("build", true, 0))
	assert.True(t, c.Keep("build", false, 100)) // a file named "build" survives
}

func TestAnchoredPattern(t *testing.T) {
	c := New()
	require.NoError(t, c.Exclude("/root.txt"))

	assert.False(t, c.Keep("root.txt", false, 100))
	assert.True(t, c.Keep("sub/root.txt", false, 100))
}

func TestMinSizeSkipsSmallFilesOnly(t *testing.T) {
	c := New()
	c.SetMinSize(1024)

	assert.False(t, c.Empty())
	assert.False(t, c.Keep("small.txt", false, 100))
	assert.True(t, c.Keep("big.txt", false, 4096))
	assert.True(t, c.Keep("dir", true, 0)) // directories are not size checked
}
