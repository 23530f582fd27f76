package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flycam/internal/config"

	"go.uber.org/zap"
)

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestNewWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flycam.log")
	l, err := New(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Debug("hidden")
	l.Info("camera ready", zap.Float32("zoom", 45))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"camera ready"`) || !strings.Contains(out, `"zoom":45`) {
		t.Errorf("unexpected log contents: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %s", out)
	}
}

func TestGlobal(t *testing.T) {
	if L() == nil {
		t.Fatal("default logger should be a no-op, not nil")
	}

	l := zap.NewExample()
	SetGlobal(l)
	if L() != l {
		t.Errorf("SetGlobal did not replace the logger")
	}

	SetGlobal(nil)
	if L() == nil {
		t.Errorf("SetGlobal(nil) should fall back to no-op")
	}
}
