package gesture

import (
	"testing"
	"time"
)

var start = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestTracker_PointerDragsImmediately(t *testing.T) {
	tracker := NewTracker(0)

	tracker.Press("a", SourcePointer, start)
	if tracker.State() != Dragging {
		t.Fatalf("expected dragging, got %s", tracker.State())
	}

	tracker.Hover("b")
	if tracker.HoverID() != "b" {
		t.Fatalf("expected hover b, got %q", tracker.HoverID())
	}

	drop, ok := tracker.Release("b")
	if !ok {
		t.Fatal("expected a drop")
	}
	if drop.DraggedID != "a" || drop.TargetID != "b" {
		t.Fatalf("unexpected drop %+v", drop)
	}
	if tracker.State() != Idle {
		t.Fatalf("expected idle after release, got %s", tracker.State())
	}
}

func TestTracker_TouchNeedsLongPress(t *testing.T) {
	tracker := NewTracker(DefaultLongPress)

	tracker.Press("a", SourceTouch, start)
	if tracker.State() != Armed {
		t.Fatalf("expected armed, got %s", tracker.State())
	}

	tracker.Hover("b")
	if tracker.HoverID() != "" {
		t.Fatalf("expected hover ignored while armed, got %q", tracker.HoverID())
	}

	if tracker.Tick(start.Add(299 * time.Millisecond)) {
		t.Fatal("expected no change before the threshold")
	}
	if !tracker.Tick(start.Add(300 * time.Millisecond)) {
		t.Fatal("expected dragging at the threshold")
	}
	if tracker.State() != Dragging {
		t.Fatalf("expected dragging, got %s", tracker.State())
	}
	if tracker.Tick(start.Add(time.Second)) {
		t.Fatal("expected no further change while dragging")
	}
}

func TestTracker_ReleaseWhileArmedIsATap(t *testing.T) {
	tracker := NewTracker(DefaultLongPress)

	tracker.Press("a", SourceTouch, start)
	if _, ok := tracker.Release("b"); ok {
		t.Fatal("expected no drop for a short touch")
	}
	if tracker.State() != Idle {
		t.Fatalf("expected idle, got %s", tracker.State())
	}
}

func TestTracker_ReleaseOnSelf(t *testing.T) {
	tracker := NewTracker(0)

	tracker.Press("a", SourcePointer, start)
	if _, ok := tracker.Release("a"); ok {
		t.Fatal("expected no drop onto the dragged item")
	}
	if _, ok := tracker.Release("b"); ok {
		t.Fatal("expected no drop after the gesture ended")
	}
}

func TestTracker_Cancel(t *testing.T) {
	tracker := NewTracker(0)

	tracker.Press("a", SourcePointer, start)
	tracker.Cancel()

	if tracker.State() != Idle || tracker.DraggedID() != "" {
		t.Fatalf("expected reset tracker, got %s %q", tracker.State(), tracker.DraggedID())
	}
	if _, ok := tracker.Release("b"); ok {
		t.Fatal("expected no drop after cancel")
	}
}

func TestTracker_PressEmptyID(t *testing.T) {
	tracker := NewTracker(0)

	tracker.Press("", SourcePointer, start)
	if tracker.State() != Idle {
		t.Fatalf("expected idle for empty press, got %s", tracker.State())
	}
}
