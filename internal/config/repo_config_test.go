package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("returns defaults when config does not exist", func(t *testing.T) {
		settings, err := Load(t.TempDir())
		require.NoError(t, err)
		require.Equal(t, &Settings{}, settings)
	})

	t.Run("reads values from trail.yml", func(t *testing.T) {
		gitDir := t.TempDir()
		content := "branchUpdateCommand: git stack-move\nimpactWorkers: 3\ncommandTimeout: 45s\nlogFile: /tmp/trail.log\n"
		require.NoError(t, os.WriteFile(filepath.Join(gitDir, FileName), []byte(content), 0600))

		settings, err := Load(gitDir)
		require.NoError(t, err)
		require.Equal(t, "git stack-move", settings.BranchUpdateCommand)
		require.Equal(t, 3, settings.ImpactWorkers)
		require.Equal(t, 45*time.Second, settings.CommandTimeout)
		require.Equal(t, "/tmp/trail.log", settings.LogFile)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		gitDir := t.TempDir()
		require.NoError(t, Set(gitDir, "impactWorkers", "2"))
		t.Setenv("TRAIL_IMPACT_WORKERS", "8")
		t.Setenv("TRAIL_BRANCH_UPDATE_COMMAND", "echo")

		settings, err := Load(gitDir)
		require.NoError(t, err)
		require.Equal(t, 8, settings.ImpactWorkers)
		require.Equal(t, "echo", settings.BranchUpdateCommand)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		gitDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(gitDir, FileName), []byte("commandTimeout: soon\n"), 0600))

		_, err := Load(gitDir)
		require.Error(t, err)
	})
}

func TestSet(t *testing.T) {
	t.Run("round-trips through the file", func(t *testing.T) {
		gitDir := t.TempDir()
		require.NoError(t, Set(gitDir, "branchUpdateCommand", "git branch -f"))
		require.NoError(t, Set(gitDir, "commandTimeout", "1m"))

		config, err := GetRepoConfig(gitDir)
		require.NoError(t, err)
		require.Equal(t, "git branch -f", *config.BranchUpdateCommand)
		require.Equal(t, "1m", *config.CommandTimeout)
		require.Nil(t, config.ImpactWorkers)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		require.Error(t, Set(t.TempDir(), "trunk", "main"))
	})

	t.Run("invalid worker counts are rejected", func(t *testing.T) {
		require.Error(t, Set(t.TempDir(), "impactWorkers", "-1"))
	})
}

func TestGet(t *testing.T) {
	gitDir := t.TempDir()

	value, err := Get(gitDir, "impactWorkers")
	require.NoError(t, err)
	require.Empty(t, value)

	require.NoError(t, Set(gitDir, "impactWorkers", "4"))
	value, err = Get(gitDir, "impactWorkers")
	require.NoError(t, err)
	require.Equal(t, "4", value)

	_, err = Get(gitDir, "trunk")
	require.Error(t, err)
}
