// Package stats accumulates counters for one walk-and-rank run.
package stats

import (
	"sync/atomic"
	"time"
)

// Collector tracks what a walk saw. Counters are atomic so a presenter
// can snapshot them while the walk is still feeding the collector.
type Collector struct {
	files      atomic.Int64
	dirs       atomic.Int64
	links      atomic.Int64
	bytes      atomic.Int64
	walkErrors atomic.Int64
	sizeErrors atomic.Int64
	startTime  time.Time
}

// NewCollector creates a Collector with startTime set to now.
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

func (c *Collector) AddFiles(n int64)      { c.files.Add(n) }
func (c *Collector) AddDirs(n int64)       { c.dirs.Add(n) }
func (c *Collector) AddLinks(n int64)      { c.links.Add(n) }
func (c *Collector) AddBytes(n int64)      { c.bytes.Add(n) }
func (c *Collector) AddWalkErrors(n int64) { c.walkErrors.Add(n) }
func (c *Collector) AddSizeErrors(n int64) { c.sizeErrors.Add(n) }

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	Files      int64
	Dirs       int64
	Links      int64
	Bytes      int64
	WalkErrors int64
	SizeErrors int64
	Elapsed    time.Duration
}

// Snapshot returns a consistent point-in-time read of all counters.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Files:      c.files.Load(),
		Dirs:       c.dirs.Load(),
		Links:      c.links.Load(),
		Bytes:      c.bytes.Load(),
		WalkErrors: c.walkErrors.Load(),
		SizeErrors: c.sizeErrors.Load(),
		Elapsed:    time.Since(c.startTime),
	}
}

// Entries reports the total number of collected entries across kinds.
func (s Snapshot) Entries() int64 {
	return s.Files + s.Dirs + s.Links
}
