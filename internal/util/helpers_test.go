package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp(5,0,3) = %d", got)
	}
	if got := Clamp(0.1, 0.5, 3.0); got != 0.5 {
		t.Fatalf("Clamp(0.1,0.5,3) = %v", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("Clamp(2,0,3) = %d", got)
	}
}

func TestPtrDeref(t *testing.T) {
	if Deref[string](nil) != "" {
		t.Fatalf("expected zero value")
	}
	if Deref(Ptr("x")) != "x" {
		t.Fatalf("expected round trip")
	}
}

func TestConfigDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	if got := ConfigDir("app"); got != "/tmp/cfg/app" {
		t.Fatalf("ConfigDir = %q", got)
	}
}

func TestDataDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/alice")
	if got := DataDir("app"); got != "/home/alice/.local/share/app" {
		t.Fatalf("DataDir = %q", got)
	}
}

func TestReportsDirUsesUserDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	if err := os.MkdirAll(filepath.Join(home, ".config"), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	dirs := "# generated\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if err := os.WriteFile(filepath.Join(home, ".config", "user-dirs.dirs"), []byte(dirs), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	want := filepath.Join(home, "Docs", "app", "reports")
	if got := ReportsDir("app"); got != want {
		t.Fatalf("ReportsDir = %q, want %q", got, want)
	}
}
