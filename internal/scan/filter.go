package scan

// retained decides whether a discovered node becomes an Entry. Files and
// symlinks always pass; directories only when includeDirs is set. The
// walker applies this inline, exactly once per node — a dropped directory
// is still descended into for its children.
func retained(kind Kind, includeDirs bool) bool {
	if kind == Dir {
		return includeDirs
	}
	return true
}
