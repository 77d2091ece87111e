package diag

import "time"

// Type identifies the kind of diagnostic.
type Type int

const (
	// WalkError means a node could not be opened or read during the walk.
	// The node was skipped and the walk continued.
	WalkError Type = iota + 1
	// SizeError means metadata could not be resolved for an entry that was
	// already collected. The size degraded to zero.
	SizeError
)

var typeNames = [...]string{
	WalkError: "WalkError",
	SizeError: "SizeError",
}

func (t Type) String() string {
	if t > 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Event is a single non-fatal diagnostic emitted during a walk or a size
// query. The engine never renders these itself; callers decide whether to
// log, print, or drop them.
type Event struct {
	Type      Type
	Timestamp time.Time
	Path      string
	Label     string // stable classification from Classify
	Err       error  // underlying cause
}

// NotifyFunc receives diagnostics. A nil NotifyFunc discards them.
type NotifyFunc func(Event)

// Notify builds an event for err at path and hands it to fn, classifying
// the cause. It is a no-op when fn is nil.
func Notify(fn NotifyFunc, typ Type, path string, err error) {
	if fn == nil {
		return
	}
	fn(Event{
		Type:      typ,
		Timestamp: time.Now(),
		Path:      path,
		Label:     Classify(err),
		Err:       err,
	})
}
