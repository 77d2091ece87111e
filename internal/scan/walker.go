package scan

import (
	"os"
	"path/filepath"

	"github.com/calebmur/hefty/internal/diag"
)

// walker performs one pre-order depth-first pass over a tree. It is
// strictly sequential: a single Lstat or ReadDir is in flight at a time,
// and each handle is released before the next call is issued.
type walker struct {
	opts    Options
	notify  diag.NotifyFunc
	entries []Entry
}

func (w *walker) walk(root string) {
	kind, err := w.kindOf(root)
	if err != nil {
		w.fail(root, err)
		return
	}
	w.visit(root, kind, 0)
}

// visit reports the node when depth and filter policy admit it, then
// descends if it is a directory above the depth limit. Parents are always
// reported before their children; sibling order is whatever directory
// enumeration yields.
func (w *walker) visit(path string, kind Kind, depth int) {
	if depth >= w.opts.MinDepth && retained(kind, w.opts.IncludeDirs) {
		w.entries = append(w.entries, Entry{
			Path:   path,
			Kind:   kind,
			Depth:  depth,
			follow: w.opts.FollowLinks,
			notify: w.notify,
		})
	}

	if kind != Dir || depth >= w.opts.MaxDepth {
		return
	}

	children, err := os.ReadDir(path)
	if err != nil {
		w.fail(path, err)
		return
	}
	for _, child := range children {
		childPath := filepath.Join(path, child.Name())
		childKind, err := w.kindOf(childPath)
		if err != nil {
			w.fail(childPath, err)
			continue
		}
		w.visit(childPath, childKind, depth+1)
	}
}

// kindOf resolves a node's kind under the link policy. With FollowLinks a
// symlink takes its target's kind, so a link to a directory is descended
// into; a dangling link surfaces as an error. Without it a symlink is
// reported as Symlink and never descended.
func (w *walker) kindOf(path string) (Kind, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, err
	}
	mode := info.Mode()
	if mode&os.ModeSymlink != 0 && w.opts.FollowLinks {
		target, err := os.Stat(path)
		if err != nil {
			return 0, err
		}
		mode = target.Mode()
	}

	switch {
	case mode&os.ModeSymlink != 0:
		return Symlink, nil
	case mode.IsDir():
		return Dir, nil
	default:
		return File, nil
	}
}

// fail reports a per-node traversal error and lets the walk continue.
func (w *walker) fail(path string, err error) {
	diag.Notify(w.notify, diag.WalkError, path, err)
}
