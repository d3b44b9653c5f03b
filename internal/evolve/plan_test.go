package evolve_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"trail.dev/trail/internal/evolve"
)

func TestInstructionLine(t *testing.T) {
	tests := []struct {
		name        string
		instruction evolve.Instruction
		command     string
		want        string
	}{
		{"label", evolve.Label("abc123"), "", "label abc123"},
		{"reset", evolve.Reset("abc123"), "", "reset abc123"},
		{"pick with summary", evolve.Pick("abc123", "fix: the thing"), "", "pick abc123 fix: the thing"},
		{"pick without summary", evolve.Pick("abc123", ""), "", "pick abc123"},
		{"branch update uses default command", evolve.BranchUpdate("feature"), "", "exec git branch -f feature"},
		{"branch update uses custom command", evolve.BranchUpdate("feature"), "stack-move", "exec stack-move feature"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.instruction.Line(tt.command))
		})
	}
}

func TestPlanWriteFile(t *testing.T) {
	plan := &evolve.Plan{
		Base: "B",
		Instructions: []evolve.Instruction{
			evolve.Label("B"),
			evolve.Pick("c1", "one"),
			evolve.Label("c1"),
			evolve.Reset("B"),
		},
	}

	path := filepath.Join(t.TempDir(), "todo")
	require.NoError(t, plan.WriteFile(path, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "label B\npick c1 one\nlabel c1\nreset B", string(data))
	require.Equal(t, "branch-update", evolve.KindBranchUpdate.String())
}
