package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()
	t.Cleanup(Reset)

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInfo_WritesToFile(t *testing.T) {
	logPath := setupTestLogger(t)

	Info("evaluated %s = %d", "2+3", 5)

	if !strings.Contains(readLog(t, logPath), "evaluated 2+3 = 5") {
		t.Error("log file should contain the formatted message")
	}
}

func TestDebug_SuppressedAtInfoLevel(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-debug-marker")
	Warn("visible-warn-marker")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug-marker") {
		t.Error("debug message should not be written at info level")
	}
	if !strings.Contains(content, "visible-warn-marker") {
		t.Error("warn message should be written at info level")
	}
}

func TestSetDebug_EnablesDebug(t *testing.T) {
	logPath := setupTestLogger(t)

	SetDebug(true)
	Debug("debug-enabled-marker")

	if !strings.Contains(readLog(t, logPath), "debug-enabled-marker") {
		t.Error("debug message should be written after SetDebug(true)")
	}
}

func TestComponentLogger_AddsAttribute(t *testing.T) {
	logPath := setupTestLogger(t)

	ComponentLogger("History").Info("recorded", "entries", 3)

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=History") {
		t.Errorf("expected component attribute in log, got:\n%s", content)
	}
	if !strings.Contains(content, "entries=3") {
		t.Errorf("expected entries attribute in log, got:\n%s", content)
	}
}

func TestInit_SecondCallIgnored(t *testing.T) {
	first := setupTestLogger(t)

	second := filepath.Join(t.TempDir(), "other.log")
	if err := Init(second); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if Path() != first {
		t.Errorf("Path() = %q, want %q", Path(), first)
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Init("/nonexistent/dir/abacus.log"); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestReset_AllowsReinit(t *testing.T) {
	logPath1 := setupTestLogger(t)
	Info("message to log1")

	Reset()
	logPath2 := filepath.Join(t.TempDir(), "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	Info("message to log2")

	if c := readLog(t, logPath1); strings.Contains(c, "message to log2") {
		t.Error("log1 should not contain 'message to log2'")
	}
	if c := readLog(t, logPath2); !strings.Contains(c, "message to log2") {
		t.Error("log2 should contain 'message to log2'")
	}
}

func TestClose_NoPanicAfterClose(t *testing.T) {
	setupTestLogger(t)
	Close()
	// Logging after close is a silent no-op
	Info("after close")
}

func TestClearLogs_RemovesActiveLog(t *testing.T) {
	logPath := setupTestLogger(t)
	Info("about to be cleared")

	n, err := ClearLogs()
	if err != nil {
		t.Fatalf("ClearLogs() error: %v", err)
	}
	if n != 1 {
		t.Errorf("ClearLogs() = %d, want 1", n)
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Errorf("log file should be gone, stat err = %v", err)
	}
	if Path() != "" {
		t.Errorf("Path() = %q after clear, want empty", Path())
	}

	// A fresh Init after clearing opens the new file.
	again := filepath.Join(t.TempDir(), "again.log")
	if err := Init(again); err != nil {
		t.Fatal(err)
	}
	Info("after clear")
	if c := readLog(t, again); !strings.Contains(c, "after clear") {
		t.Error("logging should resume after Init")
	}
}
