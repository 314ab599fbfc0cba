package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		enabled slog.Level
		blocked slog.Level
	}{
		{name: "debug", level: "debug", enabled: slog.LevelDebug, blocked: slog.LevelDebug - 1},
		{name: "warn", level: "warn", enabled: slog.LevelWarn, blocked: slog.LevelInfo},
		{name: "error", level: "error", enabled: slog.LevelError, blocked: slog.LevelWarn},
		{name: "unknown falls back to info", level: "loud", enabled: slog.LevelInfo, blocked: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(tt.level, &buf)
			if !l.Enabled(context.Background(), tt.enabled) {
				t.Errorf("Expected level %v enabled", tt.enabled)
			}
			if l.Enabled(context.Background(), tt.blocked) {
				t.Errorf("Expected level %v disabled", tt.blocked)
			}
		})
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	if err := printTable(&buf); err != nil {
		t.Fatalf("printTable failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 46 {
		t.Fatalf("Expected header plus 45 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ENERGY") {
		t.Errorf("Unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0.02 J") || !strings.Contains(lines[1], "5.727 C") {
		t.Errorf("Unexpected first row %q", lines[1])
	}
}

func TestPlotSolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")

	var buf bytes.Buffer
	if err := plotSolution(&buf, path, defaultSolveOptions()); err != nil {
		t.Fatalf("plotSolution failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("Expected non-empty plot at %s (err %v)", path, err)
	}
}

func TestRootCommandRunsSolve(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--log-level", "error"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "Abscissa value that yields a potential of 3 = ") != 2 {
		t.Errorf("Expected two abscissa lines, got:\n%s", out)
	}
	if strings.Count(out, "Root was found in ") != 2 {
		t.Errorf("Expected two iteration lines, got:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := buf.String(); got != "baryroot version "+version+"\n" {
		t.Errorf("Unexpected version output %q", got)
	}
}
