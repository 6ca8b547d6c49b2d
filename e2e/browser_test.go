// ABOUTME: E2E tests for the winframe browser: startup, listing, key bindings, and exit
// ABOUTME: Drives the real binary through a PTY; skipped in short mode

package e2e

import (
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestBrowser_StartsAndQuits(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	s := startWinframe(t, writeTree(t, map[string]string{"alpha.txt": "first line\n"}))
	defer s.close()

	s.expectStringTimeout(t, "winframe", 5*time.Second)
	s.expectStringTimeout(t, "alpha.txt", 5*time.Second)

	s.send(t, "q")
	s.waitExit(t, 5*time.Second)
}

func TestBrowser_CtrlC_Exits(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	s := startWinframe(t, writeTree(t, map[string]string{"a.txt": ""}))
	defer s.close()

	s.expectStringTimeout(t, "winframe", 5*time.Second)
	s.sendCtrl(t, 'c')
	s.waitExit(t, 5*time.Second)
}

func TestBrowser_PreviewFollowsCursor(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	dir := writeTree(t, map[string]string{
		"a.txt": "apples\n",
		"b.txt": "bananas\n",
	})
	s := startWinframe(t, dir)
	defer s.close()

	s.expectStringTimeout(t, "apples", 5*time.Second)
	s.send(t, "j")
	s.expectStringTimeout(t, "bananas", 5*time.Second)

	s.send(t, "q")
	s.waitExit(t, 5*time.Second)
}

func TestBrowser_ProjectKeyBinding(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	dir := writeTree(t, map[string]string{
		"notes.txt":             "x\n",
		".winframe/config.yaml": "keys:\n  quit: [x]\nborder: rounded\n",
	})
	s := startWinframe(t, dir)
	defer s.close()

	s.expectStringTimeout(t, "notes.txt", 5*time.Second)
	s.expectStringTimeout(t, "╭", 5*time.Second)
	s.send(t, "x")
	s.waitExit(t, 5*time.Second)
}

func TestBrowser_RefusesWithoutTerminal(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
	if binPath == "" {
		t.Skip("winframe binary not built")
	}

	cmd := exec.Command(binPath, "-dir", t.TempDir())
	cmd.Env = env(t)
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatal("expected a non-zero exit without a terminal")
	}
	if !strings.Contains(string(out), "interactive terminal") {
		t.Errorf("output = %q", out)
	}
}

func TestBrowser_ExplainWithoutTerminal(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
	if binPath == "" {
		t.Skip("winframe binary not built")
	}

	cmd := exec.Command(binPath, "-dir", t.TempDir(), "-explain", "-border", "thick")
	cmd.Env = env(t)
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("-explain failed: %v", err)
	}
	for _, want := range []string{"=== Display ===", "Border:       thick", "=== Keys ==="} {
		if !strings.Contains(string(out), want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
