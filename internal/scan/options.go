package scan

import "math"

// Options controls a walk. Fields are independent; no combination is
// invalid. The zero value confines the walk to the root node itself
// (MaxDepth 0), so most callers should start from DefaultOptions.
type Options struct {
	// MinDepth skips nodes shallower than this. The root sits at depth 0,
	// so the default of 0 includes it.
	MinDepth int
	// MaxDepth stops descent below this depth. Nodes at MaxDepth are still
	// reported; their children are not visited.
	MaxDepth int
	// FollowLinks resolves symlinks to their targets. A link to a
	// directory is descended into, with the usual cycle risk; the walker
	// does not detect cycles.
	FollowLinks bool
	// IncludeDirs retains directory nodes as entries. Directories are
	// descended into either way.
	IncludeDirs bool
}

// DefaultOptions returns the canonical defaults: unbounded depth, links
// not followed, directories excluded.
func DefaultOptions() Options {
	return Options{MaxDepth: math.MaxInt}
}
