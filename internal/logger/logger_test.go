package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFileOutputRespectsLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "facet.log")
	if err := Init("warn", logFile, false); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(func() { Log = zap.NewNop() })

	Info("dropped")
	Warn("kept", zap.Int("faces", 12))
	Named("render").Error("also kept")
	Sync()

	f, err := os.Open(logFile)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("line %q is not JSON: %v", sc.Text(), err)
		}
		entries = append(entries, e)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(entries), entries)
	}
	if entries[0]["msg"] != "kept" || entries[0]["faces"] != float64(12) {
		t.Errorf("first entry = %v", entries[0])
	}
	if entries[1]["logger"] != "render" || entries[1]["level"] != "error" {
		t.Errorf("second entry = %v", entries[1])
	}
}

func TestInitWithoutOutputsIsNop(t *testing.T) {
	if err := Init("debug", "", false); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger with no outputs should be disabled")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if (err != nil) != tc.wantErr || got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, %v", tc.in, got, err)
			}
		})
	}

	if err := Init("verbose", "", false); err == nil {
		t.Error("Init accepted an unknown level")
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/x.log")
	if cfg.Path != "/tmp/x.log" || cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 {
		t.Errorf("DefaultFileConfig() = %+v", cfg)
	}
}
