package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, s.APIURL)
	assert.Equal(t, DefaultTheme, s.Theme)
	assert.Equal(t, CacheFileName, filepath.Base(s.Cache))
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "api_url: http://tasks.internal:9000/api/\ntimeout: 5s\ntheme: dracula\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://tasks.internal:9000/api", s.APIURL)
	assert.Equal(t, 5*time.Second, s.Timeout)
	assert.Equal(t, "dracula", s.Theme)

	t.Setenv("TASKGRAPH_API_URL", "http://other:1/api")
	t.Setenv("TASKGRAPH_CACHE", "")
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://other:1/api", s.APIURL)
	assert.Empty(t, s.Cache)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [oops"), 0o600))
	_, err := Load(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("timeout: -1s\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
}
