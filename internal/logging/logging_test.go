package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "store", "notion-prompts")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %s", out)
	}
	if !strings.Contains(out, "store=notion-prompts") {
		t.Errorf("warn line missing attrs: %s", out)
	}
}

func TestOpenFileKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	old := []string{
		"promptcraft-2020-01-01T00-00-00.000.log",
		"promptcraft-2020-01-02T00-00-00.000.log",
		"promptcraft-2020-01-03T00-00-00.000.log",
	}
	for _, name := range old {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	f, err := OpenFile(dir, 2)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	files, err := filepath.Glob(filepath.Join(dir, "promptcraft-*.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("kept %d files, want 2: %v", len(files), files)
	}
	if filepath.Base(files[0]) != old[2] {
		t.Errorf("oldest kept = %s, want %s", filepath.Base(files[0]), old[2])
	}
	if files[1] != f.Name() {
		t.Errorf("newest kept = %s, want the new file %s", files[1], f.Name())
	}
}
