package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectlist/internal/domain"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	t.Parallel()
	svc := NewService()

	cfg, err := svc.LoadFromPath(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Empty(t, cfg.Tasks)
	assert.True(t, cfg.UISettings.AutosaveOnExit)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()
	svc := NewService()
	path := filepath.Join(t.TempDir(), DefaultFileName)

	cfg := Default()
	TasksToConfig(cfg, []domain.Task{
		{Title: "write release notes", Done: false},
		{Title: "tag v1.0.0", Done: true},
	})
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	tasks := TasksFromConfig(loaded)
	require.Len(t, tasks, 2)
	assert.Equal(t, "write release notes", tasks[0].Title)
	assert.False(t, tasks[0].Done)
	assert.Equal(t, "tag v1.0.0", tasks[1].Title)
	assert.True(t, tasks[1].Done)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Parallel()
	svc := NewService()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("tasks = not-toml"), 0644))

	_, err := svc.LoadFromPath(path)
	assert.Error(t, err)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	t.Parallel()
	svc := NewService()
	path := filepath.Join(t.TempDir(), "nested", "dir", DefaultFileName)

	require.NoError(t, svc.SaveToPath(Default(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
