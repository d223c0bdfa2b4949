// Package testsupport holds helpers shared by ktra's command tests.
package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var buildKtra = sync.OnceValues(func() (string, error) {
	root, err := moduleRoot()
	if err != nil {
		return "", err
	}

	binDir, err := os.MkdirTemp("", "ktra-bin-")
	if err != nil {
		return "", fmt.Errorf("create bin dir: %w", err)
	}

	bin := filepath.Join(binDir, "ktra")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/ktra")
	cmd.Dir = root
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("build ktra: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return bin, nil
})

// BuildKtra builds the ktra binary once per test process and returns its path.
func BuildKtra(t testing.TB) string {
	t.Helper()

	bin, err := buildKtra()
	if err != nil {
		t.Fatalf("%v", err)
	}
	return bin
}

// moduleRoot asks the go tool for the directory holding go.mod.
func moduleRoot() (string, error) {
	output, err := exec.Command("go", "env", "GOMOD").Output()
	if err != nil {
		return "", fmt.Errorf("go env GOMOD: %w", err)
	}
	gomod := strings.TrimSpace(string(output))
	if gomod == "" || gomod == os.DevNull {
		return "", fmt.Errorf("could not find module root (go.mod)")
	}
	return filepath.Dir(gomod), nil
}
