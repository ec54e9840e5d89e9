package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNilLoggerIsSafe(t *testing.T) {
	l, err := New("", true)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if l != nil {
		t.Fatal("empty path should yield a nil logger")
	}
	l.Printf("ignored %d", 1)
	l.Debugf("ignored")
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestLoggerWritesTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "loidraft.log")
	l, err := New(path, false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Printf("reorder %s -> %s\n", "commission", "rent")
	l.Debugf("hidden")
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "] reorder commission -> rent") || !strings.HasPrefix(out, "[") {
		t.Fatalf("unexpected log contents: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written without debug flag: %q", out)
	}
}
