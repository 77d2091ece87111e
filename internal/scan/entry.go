package scan

import (
	"os"
	"time"

	"github.com/calebmur/hefty/internal/diag"
)

// Kind identifies what a walked filesystem node is.
type Kind int

const (
	File Kind = iota
	Dir
	Symlink
)

var kindNames = [...]string{
	File:    "File",
	Dir:     "Dir",
	Symlink: "Symlink",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Entry is a filesystem node retained by a walk. Path, Kind and Depth are
// fixed at discovery time; size is deliberately not.
type Entry struct {
	Path  string
	Kind  Kind
	Depth int

	follow bool
	notify diag.NotifyFunc
}

// Size resolves the entry's size by querying the filesystem. It is never
// cached: two calls issue two queries, and a node deleted after discovery
// simply reads as 0. On failure the size degrades to 0 and one SizeError
// diagnostic is emitted per failing query, so a single unreadable file
// cannot abort a ranking pass.
func (e Entry) Size() int64 {
	info, err := e.stat()
	if err != nil {
		diag.Notify(e.notify, diag.SizeError, e.Path, err)
		return 0
	}
	return info.Size()
}

// ModTime resolves the entry's modification time, degrading to the zero
// time under the same policy as Size.
func (e Entry) ModTime() time.Time {
	info, err := e.stat()
	if err != nil {
		diag.Notify(e.notify, diag.SizeError, e.Path, err)
		return time.Time{}
	}
	return info.ModTime()
}

// stat mirrors the walk's link policy: when links were followed the query
// resolves through them, otherwise a symlink reports its own metadata.
func (e Entry) stat() (os.FileInfo, error) {
	if e.follow {
		return os.Stat(e.Path)
	}
	return os.Lstat(e.Path)
}
