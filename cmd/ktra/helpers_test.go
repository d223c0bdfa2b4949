package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestShouldUseEditor(t *testing.T) {
	tests := []struct {
		name        string
		hasFlags    bool
		edit        bool
		noEdit      bool
		interactive bool
		want        bool
	}{
		{name: "edit flag wins", hasFlags: true, edit: true, want: true},
		{name: "no-edit flag wins over terminal", noEdit: true, interactive: true, want: false},
		{name: "flags skip editor", hasFlags: true, interactive: true, want: false},
		{name: "bare terminal opens editor", interactive: true, want: true},
		{name: "bare pipe skips editor", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldUseEditor(tt.hasFlags, tt.edit, tt.noEdit, tt.interactive); got != tt.want {
				t.Fatalf("shouldUseEditor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: " YES \n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "yep\n", want: false},
		{input: "y", want: true},
		{input: "", want: false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got, err := confirm(bufio.NewReader(strings.NewReader(tt.input)), &out, "Delete it?")
		if err != nil {
			t.Fatalf("confirm(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if out.String() != "Delete it? [y/n]: " {
			t.Fatalf("unexpected prompt %q", out.String())
		}
	}
}

func TestLogHighlighter(t *testing.T) {
	highlight := logHighlighter(map[string]int{"abcd2345": 3}, func(id string, prefixLen int) string {
		if prefixLen == 0 {
			return "<" + id + ">"
		}
		return "[" + id[:prefixLen] + "]" + id[prefixLen:]
	})

	if got := highlight("ABCD2345"); got != "[ABC]D2345" {
		t.Fatalf("expected case-insensitive lookup, got %q", got)
	}
	if got := highlight("zzzz2345"); got != "<zzzz2345>" {
		t.Fatalf("expected unknown ID unhighlighted, got %q", got)
	}
	if got := highlight(""); got != "" {
		t.Fatalf("expected empty ID unchanged, got %q", got)
	}
}

func TestLogHighlighterNilLengths(t *testing.T) {
	highlight := logHighlighter(nil, func(id string, prefixLen int) string {
		if prefixLen != 0 {
			t.Fatalf("expected zero prefix length, got %d", prefixLen)
		}
		return id
	})
	if got := highlight("abcd2345"); got != "abcd2345" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "task", "tasks"); got != "1 task" {
		t.Fatalf("got %q", got)
	}
	if got := pluralize(0, "task", "tasks"); got != "0 tasks" {
		t.Fatalf("got %q", got)
	}
}
