package editor

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func TestCommandPrecedence(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	if got := Command(); !reflect.DeepEqual(got, []string{DefaultCommand}) {
		t.Fatalf("expected default editor, got %v", got)
	}

	t.Setenv("EDITOR", "nano")
	if got := Command(); !reflect.DeepEqual(got, []string{"nano"}) {
		t.Fatalf("expected $EDITOR, got %v", got)
	}

	t.Setenv("VISUAL", "code --wait")
	if got := Command(); !reflect.DeepEqual(got, []string{"code", "--wait"}) {
		t.Fatalf("expected $VISUAL split into args, got %v", got)
	}
}

func TestEditRunsEditor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script editor")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "editor.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho edited > \"$1\"\n"), 0o755); err != nil {
		t.Fatalf("write editor: %v", err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	target := filepath.Join(dir, "task.toml")
	if err := Edit(target); err != nil {
		t.Fatalf("edit: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.TrimSpace(string(data)) != "edited" {
		t.Fatalf("expected editor output, got %q", data)
	}
}

func TestEditReportsExitStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script editor")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "fail.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755); err != nil {
		t.Fatalf("write editor: %v", err)
	}
	t.Setenv("VISUAL", script)

	err := Edit(filepath.Join(dir, "task.toml"))
	if err == nil || !strings.Contains(err.Error(), "exited with status 3") {
		t.Fatalf("expected exit status error, got %v", err)
	}
}
