package util

import (
	"os"
	"path/filepath"
	"strings"
)

// xdgDir resolves $env/app, falling back to ~/<fallback...>/app and finally
// ./app when there is no home directory.
func xdgDir(env, app string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return filepath.Join(expandHome(base), app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(append(append([]string{home}, fallback...), app)...)
}

// DataDir holds the log file and the snapshot cache.
func DataDir(app string) string {
	return xdgDir("XDG_DATA_HOME", app, ".local", "share")
}

func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", app, ".config")
}

// ReportsDir is where exports land when no path is given:
// ~/Documents/<app>/reports, honouring XDG_DOCUMENTS_DIR and user-dirs.dirs.
func ReportsDir(app string) string {
	return filepath.Join(documentsDir(), app, "reports")
}

func documentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := userDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// userDir reads KEY="value" out of a user-dirs.dirs file.
func userDir(data, key string) string {
	prefix := key + "="
	for _, line := range strings.Split(data, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), prefix); ok {
			return strings.Trim(v, `"`)
		}
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, _ := os.UserHomeDir()
	return strings.ReplaceAll(path, "$HOME", home)
}
