package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/skeletonize/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Thinned shape.png", "iterations", 4)

	out := buf.String()
	if !strings.Contains(out, "Thinned shape.png") || !strings.Contains(out, "iterations=4") || !strings.Contains(out, "elapsed=") {
		t.Errorf("unexpected progress output: %q", out)
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if loggerFromContext(ctx) != log.Default() {
		t.Error("missing logger should fall back to log.Default()")
	}
	if *configFromContext(ctx) != *config.Defaults() {
		t.Error("missing config should fall back to defaults")
	}

	logger := newLogger(&bytes.Buffer{}, log.InfoLevel)
	cfg := config.Defaults()
	cfg.Algorithm = "morph"
	ctx = withConfig(withLogger(ctx, logger), cfg)
	if loggerFromContext(ctx) != logger || configFromContext(ctx) != cfg {
		t.Error("context values not returned")
	}
}

func TestSetVersion(t *testing.T) {
	old := version
	defer func() { version = old }()

	SetVersion("1.2.3", "abc123", "2026-01-01")
	if version != "1.2.3" || commit != "abc123" || date != "2026-01-01" {
		t.Errorf("got %s %s %s", version, commit, date)
	}
	if NewRootCmd().Version != "1.2.3" {
		t.Error("root command does not report the version")
	}
}
