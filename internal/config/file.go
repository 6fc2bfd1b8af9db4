package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/taskgraph/internal/util"
	"gopkg.in/yaml.v3"
)

// Settings is the user-editable configuration, read from config.yaml and
// overridden by TASKGRAPH_* environment variables.
type Settings struct {
	APIURL  string        `yaml:"api_url"`
	Timeout time.Duration `yaml:"timeout"`
	Theme   string        `yaml:"theme"`
	LogFile string        `yaml:"log_file"`
	Cache   string        `yaml:"cache"`
}

// Defaults returns the settings used when no file or environment is present.
func Defaults() Settings {
	dataDir := util.DataDir(AppName)
	return Settings{
		APIURL:  DefaultAPIURL,
		Timeout: DefaultTimeout,
		Theme:   DefaultTheme,
		LogFile: filepath.Join(dataDir, LogFileName),
		Cache:   filepath.Join(dataDir, CacheFileName),
	}
}

// Path returns the location of the config file.
func Path() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads the config file at path (missing files are fine) and applies
// environment overrides on top of the defaults.
func Load(path string) (Settings, error) {
	s := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fromFile Settings
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return s, fmt.Errorf("parse %s: %w", path, err)
		}
		s.merge(fromFile)
	case errors.Is(err, os.ErrNotExist):
	default:
		return s, fmt.Errorf("read %s: %w", path, err)
	}
	s.applyEnv()
	s.APIURL = strings.TrimRight(s.APIURL, "/")
	if s.APIURL == "" {
		return s, errors.New("api_url must not be empty")
	}
	if s.Timeout < 0 {
		return s, fmt.Errorf("timeout must not be negative, got %s", s.Timeout)
	}
	return s, nil
}

func (s *Settings) merge(o Settings) {
	if o.APIURL != "" {
		s.APIURL = o.APIURL
	}
	if o.Timeout != 0 {
		s.Timeout = o.Timeout
	}
	if o.Theme != "" {
		s.Theme = o.Theme
	}
	if o.LogFile != "" {
		s.LogFile = o.LogFile
	}
	if o.Cache != "" {
		s.Cache = o.Cache
	}
}

func (s *Settings) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("TASKGRAPH_API_URL")); v != "" {
		s.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKGRAPH_THEME")); v != "" {
		s.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKGRAPH_LOG")); v != "" {
		s.LogFile = v
	}
	if v, ok := os.LookupEnv("TASKGRAPH_CACHE"); ok {
		// An explicitly empty value disables the snapshot cache.
		s.Cache = strings.TrimSpace(v)
	}
}
