// Package filter narrows a walked entry list before ranking. Patterns
// are rsync-style globs matched against root-relative slash paths.
package filter

// rule is one include or exclude pattern. Rules apply in the order they
// were added; the first match decides.
type rule struct {
	pat     *pattern
	include bool
}

// Chain holds ordered pattern rules plus an optional minimum size. The
// zero value keeps everything.
type Chain struct {
	rules   []rule
	minSize int64
}

// New creates an empty chain.
func New() *Chain {
	return &Chain{}
}

// Exclude appends an exclude rule for the given glob.
func (c *Chain) Exclude(glob string) error {
	return c.add(glob, false)
}

// Include appends an include rule, which can shield paths from a later
// exclude.
func (c *Chain) Include(glob string) error {
	return c.add(glob, true)
}

func (c *Chain) add(glob string, include bool) error {
	p, err := compile(glob)
	if err != nil {
		return err
	}
	c.rules = append(c.rules, rule{pat: p, include: include})
	return nil
}

// SetMinSize drops files smaller than n bytes. Directories are not size
// checked.
func (c *Chain) SetMinSize(n int64) {
	c.minSize = n
}

// Empty reports whether the chain filters nothing.
func (c *Chain) Empty() bool {
	return len(c.rules) == 0 && c.minSize == 0
}

// Keep reports whether relPath survives the chain. Paths matching no rule
// are kept.
func (c *Chain) Keep(relPath string, isDir bool, size int64) bool {
	if !isDir && c.minSize > 0 && size < c.minSize {
		return false
	}
	for _, r := range c.rules {
		if r.pat.match(relPath, isDir) {
			return r.include
		}
	}
	return true
}
