// Package gesture tracks press-and-drag reordering gestures as explicit
// states, independent of any task store.
//
// A pointer press begins dragging immediately. A touch press arms the
// tracker, which starts dragging only after the press has been held for the
// long-press threshold. Releasing over a different item yields a Drop.
package gesture

import "time"

// DefaultLongPress is the hold time before a touch press starts dragging.
const DefaultLongPress = 300 * time.Millisecond

// State is the phase of the current gesture.
type State string

const (
	// Idle means no gesture is in progress.
	Idle State = "idle"

	// Armed means a touch press is waiting for the long-press threshold.
	Armed State = "armed"

	// Dragging means an item is being carried.
	Dragging State = "dragging"
)

// Source identifies the input device behind a press.
type Source int

const (
	// SourcePointer is a mouse or pen press.
	SourcePointer Source = iota

	// SourceTouch is a touch press, which must be held to drag.
	SourceTouch
)

// Drop is the result of releasing a dragged item over another item.
type Drop struct {
	DraggedID string
	TargetID  string
}

// Tracker follows one gesture at a time.
type Tracker struct {
	threshold time.Duration

	state     State
	draggedID string
	hoverID   string
	pressedAt time.Time
}

// NewTracker returns an idle tracker. A non-positive threshold selects
// DefaultLongPress.
func NewTracker(threshold time.Duration) *Tracker {
	if threshold <= 0 {
		threshold = DefaultLongPress
	}
	return &Tracker{threshold: threshold, state: Idle}
}

// State returns the current phase.
func (t *Tracker) State() State {
	return t.state
}

// Threshold returns the long-press duration.
func (t *Tracker) Threshold() time.Duration {
	return t.threshold
}

// DraggedID returns the pressed item, or "" when idle.
func (t *Tracker) DraggedID() string {
	return t.draggedID
}

// HoverID returns the item under the pointer while dragging.
func (t *Tracker) HoverID() string {
	if t.state != Dragging {
		return ""
	}
	return t.hoverID
}

// Press starts a gesture on id. Any gesture already in progress is dropped.
func (t *Tracker) Press(id string, source Source, at time.Time) {
	t.reset()
	if id == "" {
		return
	}
	t.draggedID = id
	t.pressedAt = at
	if source == SourceTouch {
		t.state = Armed
		return
	}
	t.state = Dragging
	t.hoverID = id
}

// Tick promotes an armed press to dragging once the threshold has elapsed.
// It reports whether the state changed.
func (t *Tracker) Tick(now time.Time) bool {
	if t.state != Armed {
		return false
	}
	if now.Sub(t.pressedAt) < t.threshold {
		return false
	}
	t.state = Dragging
	t.hoverID = t.draggedID
	return true
}

// Hover records the item under the pointer. It is ignored unless dragging.
func (t *Tracker) Hover(id string) {
	if t.state != Dragging {
		return
	}
	t.hoverID = id
}

// Release ends the gesture over id. A Drop is returned only when an item
// was being dragged onto a different item.
func (t *Tracker) Release(id string) (Drop, bool) {
	defer t.reset()

	if t.state != Dragging || id == "" || id == t.draggedID {
		return Drop{}, false
	}
	return Drop{DraggedID: t.draggedID, TargetID: id}, true
}

// Cancel abandons the gesture.
func (t *Tracker) Cancel() {
	t.reset()
}

func (t *Tracker) reset() {
	t.state = Idle
	t.draggedID = ""
	t.hoverID = ""
	t.pressedAt = time.Time{}
}
