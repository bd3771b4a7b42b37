package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves into an empty temp dir so neither a stray config.json
// nor a .env file leaks into the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL", "PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	t.Setenv("DB_HOST", "db.example.aivencloud.com")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USER", "avnadmin")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "servicetrack")
	t.Setenv("DB_SSL", "true")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceEnv, cfg.Source)
	assert.Equal(t, "db.example.aivencloud.com", cfg.DB.Host)
	assert.Equal(t, 12345, cfg.DB.Port)
	assert.Equal(t, "avnadmin", cfg.DB.User)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Equal(t, "servicetrack", cfg.DB.Name)
	assert.True(t, cfg.DB.SSL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, defaultMaxOpenConns, cfg.DB.MaxOpenConns)
}

func TestLoadFromFile(t *testing.T) {
	dir := chdirTemp(t)
	clearEnv(t)

	contents := `{
		"database": {
			"host": "localhost",
			"port": 3306,
			"user": "root",
			"password": "root",
			"database": "servicetrack",
			"ssl": false
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(contents), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceFile, cfg.Source)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "root", cfg.DB.User)
	assert.Equal(t, "servicetrack", cfg.DB.Name)
	assert.False(t, cfg.DB.SSL)
	assert.Equal(t, defaultPort, cfg.Server.Port)
}

func TestEnvHostSwitchesWholeSource(t *testing.T) {
	// With DB_HOST present, config.json must be ignored entirely even
	// when it exists and disagrees.
	dir := chdirTemp(t)
	clearEnv(t)

	contents := `{"database": {"host": "filehost", "user": "fileuser", "database": "filedb"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(contents), 0o644))

	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_USER", "envuser")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceEnv, cfg.Source)
	assert.Equal(t, "envhost", cfg.DB.Host)
	assert.Equal(t, "envuser", cfg.DB.User)
	assert.Empty(t, cfg.DB.Name)
}

func TestLoadFromFileMissing(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)

	_, err := Load()
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	t.Setenv("DB_HOST", "localhost")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultDBPort, cfg.DB.Port)
	assert.Equal(t, defaultPort, cfg.Server.Port)
	assert.False(t, cfg.DB.SSL)
}
