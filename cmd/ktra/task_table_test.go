package main

import (
	"strings"
	"testing"
	"time"

	"github.com/amonks/ktra/task"
)

func plainHighlight(id string, prefixLen int) string {
	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}
	return "[" + id[:prefixLen] + "]" + id[prefixLen:]
}

func TestFormatTaskTable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	order := 0
	done := now.Add(-time.Hour)
	tasks := []task.Task{
		{ID: "abcd2345", Title: "Write tests", Points: 3, Status: task.StatusDoing, CreatedAt: now.Add(-2 * time.Hour), Order: &order},
		{ID: "abzz2345", Title: "Ship it", Points: 8, Status: task.StatusDone, CreatedAt: now.Add(-3 * 24 * time.Hour), CompletedAt: &done},
	}

	out := formatTaskTable(tasks, nil, plainHighlight, now)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), out)
	}

	for _, want := range []string{"ID", "STATUS", "PTS", "ORDER", "AGE", "TITLE"} {
		if !strings.Contains(lines[0], want) {
			t.Fatalf("header missing %q: %q", want, lines[0])
		}
	}

	first := lines[1]
	for _, want := range []string{"[abc]d2345", "[>] doing", "3pt", " 0 ", "2h", "Write tests"} {
		if !strings.Contains(first, want) {
			t.Fatalf("first row missing %q: %q", want, first)
		}
	}

	second := lines[2]
	for _, want := range []string{"[abz]z2345", "[x] done", "8pt", " - ", "3d", "Ship it"} {
		if !strings.Contains(second, want) {
			t.Fatalf("second row missing %q: %q", want, second)
		}
	}
}

func TestFormatTaskTableUsesGivenPrefixLengths(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{{ID: "abcd2345", Title: "Only", Status: task.StatusUnstarted, CreatedAt: now}}

	out := formatTaskTable(tasks, map[string]int{"abcd2345": 2}, plainHighlight, now)
	if !strings.Contains(out, "[ab]cd2345") {
		t.Fatalf("expected two-character prefix highlight, got:\n%s", out)
	}
}

func TestFormatTaskAge(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if got := formatTaskAge(task.Task{CreatedAt: now.Add(-90 * time.Second)}, now); got != "1m" {
		t.Fatalf("expected 1m, got %q", got)
	}
	if got := formatTaskAge(task.Task{}, now); got != "-" {
		t.Fatalf("expected - for missing timestamp, got %q", got)
	}
}
