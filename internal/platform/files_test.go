package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func stubCommands(t *testing.T) *[][]string {
	t.Helper()
	var calls [][]string
	prevRunner, prevLook := commandRunner, lookPath
	commandRunner = func(name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		return nil
	}
	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	t.Cleanup(func() {
		commandRunner = prevRunner
		lookPath = prevLook
	})
	return &calls
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "data", "visitors")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	calls := stubCommands(t)
	missing := filepath.Join(t.TempDir(), "visitors.csv")

	if err := OpenFileInManager(missing); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
	if len(*calls) != 0 {
		t.Errorf("Expected no command to run, got %v", *calls)
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	stubCommands(t)
	if err := OpenFileInManager(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestOpenFileWithDefaultApp_RunsCommand(t *testing.T) {
	if runtime.GOOS != OSLinux && runtime.GOOS != OSDarwin && runtime.GOOS != OSWindows {
		t.Skip("unsupported OS")
	}
	calls := stubCommands(t)
	path := filepath.Join(t.TempDir(), "visitors.csv")
	if err := os.WriteFile(path, []byte("uhrzeit,visitors\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := OpenFileWithDefaultApp(path); err != nil {
		t.Fatalf("OpenFileWithDefaultApp: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("Expected one command, got %v", *calls)
	}
	last := (*calls)[0]
	if last[len(last)-1] != path {
		t.Errorf("Expected command to receive %s, got %v", path, last)
	}
}

func TestOpenFileInManager_LinuxOpensParentDir(t *testing.T) {
	if runtime.GOOS != OSLinux {
		t.Skip("linux only")
	}
	calls := stubCommands(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "visitors.png")
	if err := os.WriteFile(path, []byte{0}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := OpenFileInManager(path); err != nil {
		t.Fatalf("OpenFileInManager: %v", err)
	}
	if len(*calls) != 1 || (*calls)[0][0] != XDGOpenCommand || (*calls)[0][1] != dir {
		t.Errorf("Expected xdg-open %s, got %v", dir, *calls)
	}
}
