package ui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorEnabled_ExplicitModes(t *testing.T) {
	fd := os.Stdout.Fd()
	assert.True(t, ColorEnabled("always", fd))
	assert.False(t, ColorEnabled("never", fd))
}

func TestColorEnabled_AutoOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Skip("cannot create pipe")
	}
	defer r.Close()
	defer w.Close()

	assert.False(t, ColorEnabled("auto", w.Fd()))
	assert.False(t, ColorEnabled("bogus", w.Fd())) // unrecognized behaves like auto
}
