package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// EnsureHomeDirs creates ktra's state and config directories under homeDir.
func EnsureHomeDirs(homeDir string) error {
	for _, dir := range [][]string{
		{".local", "state", "ktra"},
		{".config", "ktra"},
	} {
		if err := os.MkdirAll(filepath.Join(append([]string{homeDir}, dir...)...), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Join(dir...), err)
		}
	}
	return nil
}

// SetupTestHome points HOME at a fresh temp directory for the test and
// clears the XDG overrides so ktra falls back to it.
func SetupTestHome(t testing.TB) string {
	t.Helper()

	homeDir := t.TempDir()
	if err := EnsureHomeDirs(homeDir); err != nil {
		t.Fatalf("setup home dir: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	return homeDir
}

// SetupScriptEnv gives a testscript run the ktra binary as $KTRA, a private
// $HOME and colourless output.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("KTRA", BuildKtra(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}
