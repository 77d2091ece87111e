package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "11 B", FormatSize(11))
	assert.Equal(t, "1.0 KiB", FormatSize(1024))
	assert.Equal(t, "200 KiB", FormatSize(204800))
	assert.Equal(t, "1.0 MiB", FormatSize(1<<20))
	assert.Equal(t, "-1.0 KiB", FormatSize(-1024))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
	assert.Equal(t, "-1,234", FormatCount(-1234))
}
