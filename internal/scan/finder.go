// Package scan locates filesystem nodes beneath a root and ranks them by
// size or a caller-supplied key. The walk is synchronous and
// single-owner: a Finder is populated once, then only reordered.
package scan

import (
	"cmp"
	"slices"

	"github.com/calebmur/hefty/internal/diag"
)

// Order selects a ranking direction.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Finder owns the entries collected by one walk and reorders them in
// place. Sort methods return the receiver so calls chain.
type Finder struct {
	entries []Entry
}

// Find walks root under opts and returns a Finder holding every retained
// node. Per-node failures are classified and passed to notify (nil
// discards them); they never abort the walk, so a Finder always comes
// back, possibly empty — a nonexistent root is just one WalkError. A root
// that is a plain file yields exactly that one entry.
func Find(root string, opts Options, notify diag.NotifyFunc) *Finder {
	w := &walker{opts: opts, notify: notify}
	w.walk(root)
	return &Finder{entries: w.entries}
}

// SortAscending orders entries smallest first. Sizes are re-resolved for
// every comparison, never cached. The sort is stable: equal-sized entries
// keep their current relative order, so ranking twice reproduces the same
// sequence.
func (f *Finder) SortAscending() *Finder {
	return f.SortFunc(func(a, b Entry) int { return cmp.Compare(a.Size(), b.Size()) })
}

// SortDescending orders entries largest first. Stable, like SortAscending.
func (f *Finder) SortDescending() *Finder {
	return f.SortFunc(func(a, b Entry) int { return cmp.Compare(b.Size(), a.Size()) })
}

// Sort dispatches to SortAscending or SortDescending.
func (f *Finder) Sort(order Order) *Finder {
	if order == Ascending {
		return f.SortAscending()
	}
	return f.SortDescending()
}

// SortFunc orders entries by an arbitrary comparison, which need not
// involve sizes at all. compare follows the slices convention: negative
// when a sorts before b.
func (f *Finder) SortFunc(compare func(a, b Entry) int) *Finder {
	slices.SortStableFunc(f.entries, compare)
	return f
}

// Entries returns the collection in its current order. The slice is the
// Finder's own; callers that mutate it are reordering the Finder.
func (f *Finder) Entries() []Entry {
	return f.entries
}

// Len reports the number of collected entries.
func (f *Finder) Len() int {
	return len(f.entries)
}
