package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticklab/ticklist/pkg/types"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	v, err := loadConfig(filepath.Join(t.TempDir(), "nowhere"))
	require.NoError(t, err)
	assert.Equal(t, types.BackendJSON, v.GetString(cfgKeyBackend))
	assert.Empty(t, v.GetString(cfgKeyDataDir))
}

func TestLoadConfigReadsValues(t *testing.T) {
	dir := t.TempDir()
	content := "backend: sqlite\ndata_dir: /tmp/tasks\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, types.BackendSQLite, v.GetString(cfgKeyBackend))
	assert.Equal(t, "/tmp/tasks", v.GetString(cfgKeyDataDir))
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("backend: [unclosed\n"), 0o644))

	_, err := loadConfig(dir)
	require.Error(t, err)
}
