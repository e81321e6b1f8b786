package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevencode7/tasks/internal/domain"
)

func TestManager_GetLocalConfigInfo(t *testing.T) {
	dataDir := t.TempDir()
	m := NewManagerWithGlobalDir(dataDir, t.TempDir())

	info := m.GetLocalConfigInfo()
	assert.False(t, info.Exists)
	assert.Equal(t, filepath.Join(dataDir, domain.ConfigFileName), info.Path)

	require.NoError(t, os.WriteFile(info.Path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))

	info = m.GetLocalConfigInfo()
	assert.True(t, info.Exists)
	assert.Contains(t, info.Content, "debug")
}

func TestManager_GetGlobalConfigInfo_NoDir(t *testing.T) {
	m := NewManagerWithGlobalDir(t.TempDir(), "")

	info := m.GetGlobalConfigInfo()

	assert.False(t, info.Exists)
	assert.Empty(t, info.Path)
}

func TestManager_InitLocalConfig(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	m := NewManagerWithGlobalDir(dataDir, t.TempDir())

	require.NoError(t, m.InitLocalConfig(domain.NewDefaultConfig(), false))

	content, err := os.ReadFile(filepath.Join(dataDir, domain.ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), `model = "gemini-2.0-flash"`)
	assert.Contains(t, string(content), "max_output_tokens = 1000")
}

func TestManager_InitLocalConfig_Exists(t *testing.T) {
	dataDir := t.TempDir()
	m := NewManagerWithGlobalDir(dataDir, t.TempDir())
	path := filepath.Join(dataDir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o644))

	err := m.InitLocalConfig(domain.NewDefaultConfig(), false)
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	require.NoError(t, m.InitLocalConfig(domain.NewDefaultConfig(), true))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "# mine")
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "tasks")
	m := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	require.NoError(t, m.InitGlobalConfig(domain.NewDefaultConfig(), false))

	info := m.GetGlobalConfigInfo()
	assert.True(t, info.Exists)
	assert.Contains(t, info.Content, "[assistant]")
}

func TestManager_InitGlobalConfig_NoDir(t *testing.T) {
	m := NewManagerWithGlobalDir(t.TempDir(), "")

	assert.Error(t, m.InitGlobalConfig(domain.NewDefaultConfig(), false))
}
