package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "console.yaml")
	require.NoError(t, os.WriteFile(file, []byte("BACKEND_BASE_URL: http://from-file\nSESSION_STORE: redis\nBACKEND_RPS: 3\n"), 0o600))

	t.Setenv("BACKEND_BASE_URL", "http://from-env")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "5")

	c := Load(file)
	assert.Equal(t, "http://from-env", c.BackendBaseURL)
	assert.Equal(t, "redis", c.SessionStore)
	assert.Equal(t, 3, c.BackendRPS)
	assert.Equal(t, 5*time.Second, c.BackendTimeout)
	assert.Equal(t, "table", c.Output)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONSOLE_HOME", t.TempDir())
	t.Setenv("BACKEND_RPS", "0")

	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, "file", c.SessionStore)
	assert.Equal(t, 10, c.BackendRPS)
	assert.Equal(t, 20*time.Second, c.BackendTimeout)
	assert.Equal(t, ":8080", c.HTTPAddr)
}
