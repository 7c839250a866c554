package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEndToEndWorkflow drives the built CLI binary through a full session:
// init, login, toggle both sessions, inspect today and stats, then delete the
// user. Set ZENONE_BIN_DIR to point at the build output; without a built
// binary the test is skipped so the package suite stays runnable on its own.
func TestEndToEndWorkflow(t *testing.T) {
	binDir := os.Getenv("ZENONE_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join("..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "zenone")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s, build it first", cliPath)
	}

	// Isolate everything under a temp home.
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "zenone", "zenone.json")

	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "XDG_CONFIG_HOME=") {
			continue
		}
		env = append(env, e)
	}
	env = append(env,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("XDG_CONFIG_HOME=%s", tempDir),
	)

	run := func(wantErr bool, args ...string) string {
		t.Helper()
		cmd := exec.Command(cliPath, append(args, "--config", configPath)...)
		cmd.Env = env
		out, err := cmd.CombinedOutput()
		if (err != nil) != wantErr {
			t.Fatalf("zenone %v error = %v, wantErr %v\nOutput: %s", args, err, wantErr, out)
		}
		return string(out)
	}

	run(false, "init")

	// Commands needing a user refuse to run before login.
	run(true, "toggle", "morning")

	run(false, "login", "mei")

	out := run(false, "user", "list")
	if !strings.Contains(out, "mei") {
		t.Fatalf("user list = %q, want mei listed", out)
	}

	run(false, "toggle", "morning")
	run(false, "toggle", "evening")

	out = run(false, "today")
	if !strings.Contains(out, "Current streak: 1 days") {
		t.Errorf("today output = %q, want a 1-day streak", out)
	}

	out = run(false, "stats", "--mode", "week")
	if !strings.Contains(out, "1 perfect days") {
		t.Errorf("stats output = %q, want one perfect day", out)
	}

	// Toggling off again removes the practice.
	run(false, "toggle", "morning")
	run(false, "toggle", "evening")
	out = run(false, "stats", "--mode", "week")
	if !strings.Contains(out, "0 perfect days") {
		t.Errorf("stats after untoggle = %q, want zero perfect days", out)
	}

	// Deleting the confirmed user cascades and logs out.
	run(false, "user", "delete", "mei", "--yes")
	out = run(false, "user", "list")
	if strings.Contains(out, "mei") {
		t.Errorf("user list after delete = %q, want mei gone", out)
	}
	run(true, "today")
}
