package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/creack/pty"

	"github.com/amonks/ktra/internal/testsupport"
	"github.com/amonks/ktra/task"
)

// runInTerminal runs ktra with a pseudo-terminal on stdin and stdout,
// feeding it input, and returns everything it printed.
func runInTerminal(t *testing.T, input string, args ...string) string {
	t.Helper()

	cmd := exec.Command(testsupport.BuildKtra(t), args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	ptmx, err := pty.Start(cmd)
	if err != nil {
		t.Fatalf("start in pty: %v", err)
	}
	defer ptmx.Close()

	if _, err := io.WriteString(ptmx, input); err != nil {
		t.Fatalf("write to pty: %v", err)
	}

	var out bytes.Buffer
	// Reading the master returns EIO once the child closes the terminal.
	_, _ = io.Copy(&out, ptmx)
	if err := cmd.Wait(); err != nil {
		t.Fatalf("ktra %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return strings.ReplaceAll(out.String(), "\r\n", "\n")
}

func runPlain(t *testing.T, args ...string) string {
	t.Helper()

	cmd := exec.Command(testsupport.BuildKtra(t), args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("ktra %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return string(out)
}

func TestDeletePromptsOnTerminal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pseudo-terminals are unix only")
	}
	testsupport.SetupTestHome(t)

	runPlain(t, "add", "Throw away")
	runPlain(t, "add", "Keep me")

	listed := runPlain(t, "list", "--json")
	keep := taskIDByTitle(t, listed, "Keep me")
	drop := taskIDByTitle(t, listed, "Throw away")

	out := runInTerminal(t, "n\n", "delete", keep)
	if !strings.Contains(out, `"Keep me"? [y/n]: `) {
		t.Fatalf("expected confirmation prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "Kept "+keep+": Keep me") {
		t.Fatalf("expected task kept, got:\n%s", out)
	}

	out = runInTerminal(t, "y\n", "delete", drop)
	if !strings.Contains(out, "Deleted "+drop+": Throw away") {
		t.Fatalf("expected task deleted, got:\n%s", out)
	}

	remaining := runPlain(t, "list")
	if strings.Contains(remaining, "Throw away") || !strings.Contains(remaining, "Keep me") {
		t.Fatalf("unexpected remaining tasks:\n%s", remaining)
	}
}

func taskIDByTitle(t *testing.T, listJSON, title string) string {
	t.Helper()

	var items []task.Task
	if err := sonic.ConfigStd.UnmarshalFromString(listJSON, &items); err != nil {
		t.Fatalf("decode task list: %v", err)
	}
	for _, item := range items {
		if item.Title == title {
			return item.ID
		}
	}
	t.Fatalf("task %q not found in:\n%s", title, listJSON)
	return ""
}
