package actions

import (
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/require"

	"trail.dev/trail/internal/config"
	"trail.dev/trail/internal/evolve"
	"trail.dev/trail/internal/git"
	"trail.dev/trail/internal/runtime"
)

func TestSequenceEditor(t *testing.T) {
	plan := &evolve.Plan{Base: git.CommitID("bbbb"), Onto: git.CommitID("oooo")}

	t.Run("passes resolved ids to the plan command", func(t *testing.T) {
		editor, err := sequenceEditor(EvolveOptions{Executable: "/usr/local/bin/trail"}, plan)
		require.NoError(t, err)
		require.Equal(t, "/usr/local/bin/trail evolve plan oooo bbbb", editor)
	})

	t.Run("quotes paths and forwarded flags", func(t *testing.T) {
		editor, err := sequenceEditor(EvolveOptions{
			Executable:          "/opt/my tools/trail",
			BranchUpdateCommand: "git branch --force",
			Debug:               true,
		}, plan)
		require.NoError(t, err)

		words, err := shellquote.Split(editor)
		require.NoError(t, err)
		require.Equal(t, []string{
			"/opt/my tools/trail", "evolve", "plan", "oooo", "bbbb",
			"--branch-update-command", "git branch --force", "--debug",
		}, words)
	})
}

func TestBranchUpdateCommandPrecedence(t *testing.T) {
	rt := &runtime.Context{Settings: &config.Settings{}}
	require.Equal(t, evolve.DefaultBranchUpdateCommand, EvolveOptions{}.branchUpdateCommand(rt))

	rt.Settings.BranchUpdateCommand = "git branch -f -q"
	require.Equal(t, "git branch -f -q", EvolveOptions{}.branchUpdateCommand(rt))
	require.Equal(t, "custom", EvolveOptions{BranchUpdateCommand: "custom"}.branchUpdateCommand(rt))
}
