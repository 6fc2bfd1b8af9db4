package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/taskgraph/internal/config"

	"github.com/akyairhashvil/taskgraph/internal/report"
	"github.com/akyairhashvil/taskgraph/internal/testutil"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if opts.export != "" || opts.output != "" || opts.list || opts.version || opts.clearCache {
		t.Fatalf("expected zero options, got %+v", opts)
	}
}

func TestParseFlagsExport(t *testing.T) {
	opts, err := parseFlags([]string{"-export", "SVG", "-o", "-"})
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if opts.export != report.FormatSVG {
		t.Fatalf("expected svg, got %q", opts.export)
	}
	if opts.output != "-" {
		t.Fatalf("expected stdout output, got %q", opts.output)
	}
}

func TestParseFlagsRejectsBadInput(t *testing.T) {
	cases := [][]string{
		{"-export", "gif"},
		{"-o", "out.png"},
		{"stray"},
		{"-nope"},
	}
	for _, args := range cases {
		if _, err := parseFlags(args); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestWriteListEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeList(&buf, nil); err != nil {
		t.Fatalf("writeList failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No tasks yet." {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriteListScenario(t *testing.T) {
	var buf bytes.Buffer
	if err := writeList(&buf, testutil.ScenarioTasks()); err != nil {
		t.Fatalf("writeList failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "#1\t") || strings.Contains(lines[0], "depends on") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "depends on #1") {
		t.Fatalf("expected dependency suffix, got %q", lines[1])
	}
	if !strings.Contains(lines[3], "Blocked") {
		t.Fatalf("expected blocked status, got %q", lines[3])
	}
}

func TestRunFlagErrorGoesToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-export", "gif"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
	if !strings.HasPrefix(stderr.String(), "Alas, there's been an error: ") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunConfigErrorGoesToStderr(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgDir := filepath.Join(dir, config.AppName)
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, config.ConfigFileName), []byte("api_url: ["), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-list"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Alas, there's been an error") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "taskgraph ") || stderr.Len() != 0 {
		t.Fatalf("unexpected output %q / %q", stdout.String(), stderr.String())
	}
}

func TestIsTerminalRejectsBuffers(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Fatalf("a buffer is not a terminal")
	}
}
