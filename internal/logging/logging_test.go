package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerText(t *testing.T) {
	var buf bytes.Buffer
	l := Logger(&buf, false, slog.LevelInfo)

	l.Info("hello", "key", "value")
	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "key=value") {
		t.Errorf("unexpected text output: %s", out)
	}
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Logger(&buf, true, slog.LevelInfo)

	l.Info("hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("unexpected json output: %s", buf.String())
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := Logger(&buf, false, slog.LevelWarn)

	l.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info record passed a warn-level logger: %s", buf.String())
	}
	l.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("warn record missing: %s", buf.String())
	}
}

func TestTeeWriterStderrOnly(t *testing.T) {
	if w := TeeWriter(""); w != os.Stderr {
		t.Error("empty path should write to stderr only")
	}
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lutctl.log")
	w := FileWriter(path)

	if _, err := w.Write([]byte("line\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "line") {
		t.Errorf("log file content = %q", data)
	}
}
