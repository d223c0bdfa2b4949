package task

import (
	"errors"
	"testing"
	"time"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
	}{
		{StatusUnstarted, StatusDoing},
		{StatusDoing, StatusDone},
		{StatusDone, StatusUnstarted},
	}

	for _, tt := range tests {
		got, err := NextStatus(tt.from)
		if err != nil {
			t.Fatalf("NextStatus(%q): %v", tt.from, err)
		}
		if got != tt.to {
			t.Errorf("NextStatus(%q) = %q, want %q", tt.from, got, tt.to)
		}
	}

	if _, err := NextStatus("bogus"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestClassifyTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		kind     MilestoneKind
		ok       bool
	}{
		{StatusUnstarted, StatusDoing, MilestoneStart, true},
		{StatusDoing, StatusDone, MilestoneComplete, true},
		{StatusDone, StatusUnstarted, "", false},
		{StatusUnstarted, StatusDone, "", false},
	}

	for _, tt := range tests {
		kind, ok := ClassifyTransition(tt.from, tt.to)
		if kind != tt.kind || ok != tt.ok {
			t.Errorf("ClassifyTransition(%q, %q) = (%q, %v), want (%q, %v)", tt.from, tt.to, kind, ok, tt.kind, tt.ok)
		}
	}
}

func TestCycle_FullLoop(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	item := Task{ID: "abc", Title: "t", Points: 5, Status: StatusUnstarted}

	milestone, err := cycle(&item, now)
	if err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if item.Status != StatusDoing || item.CompletedAt != nil {
		t.Fatalf("expected doing without completedAt, got %+v", item)
	}
	if milestone == nil || milestone.Kind != MilestoneStart || milestone.Points != 5 || milestone.TaskID != "abc" {
		t.Fatalf("expected start milestone, got %+v", milestone)
	}

	milestone, err = cycle(&item, now)
	if err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if item.Status != StatusDone || item.CompletedAt == nil || !item.CompletedAt.Equal(now) {
		t.Fatalf("expected done with completedAt, got %+v", item)
	}
	if milestone == nil || milestone.Kind != MilestoneComplete {
		t.Fatalf("expected complete milestone, got %+v", milestone)
	}

	milestone, err = cycle(&item, now)
	if err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if item.Status != StatusUnstarted || item.CompletedAt != nil {
		t.Fatalf("expected unstarted without completedAt, got %+v", item)
	}
	if milestone != nil {
		t.Fatalf("expected no milestone, got %+v", milestone)
	}
}

func TestApplyStatus_CompletionRule(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	item := Task{ID: "abc", Title: "t", Status: StatusUnstarted}

	if err := applyStatus(&item, StatusDone, now); err != nil {
		t.Fatalf("apply done: %v", err)
	}
	if item.CompletedAt == nil || !item.CompletedAt.Equal(now) {
		t.Fatalf("expected completedAt = now, got %v", item.CompletedAt)
	}

	if err := applyStatus(&item, StatusDoing, now); err != nil {
		t.Fatalf("apply doing: %v", err)
	}
	if item.CompletedAt != nil {
		t.Fatalf("expected completedAt cleared, got %v", item.CompletedAt)
	}

	if err := applyStatus(&item, "bogus", now); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if item.Status != StatusDoing {
		t.Fatalf("expected status unchanged, got %q", item.Status)
	}
}
