package evolve

import (
	"fmt"
	"os"
	"strings"

	"trail.dev/trail/internal/git"
)

// DefaultBranchUpdateCommand force-moves a branch to the current rebase position.
const DefaultBranchUpdateCommand = "git branch -f"

// Kind identifies an instruction in the rebase todo list
type Kind int

const (
	// KindLabel records the current position under a name
	KindLabel Kind = iota
	// KindReset moves the cursor back to a labeled position
	KindReset
	// KindPick replays a commit
	KindPick
	// KindBranchUpdate points a branch at the current position
	KindBranchUpdate
)

// Verb returns the todo-list verb for the kind
func (k Kind) Verb() string {
	switch k {
	case KindLabel:
		return "label"
	case KindReset:
		return "reset"
	case KindPick:
		return "pick"
	case KindBranchUpdate:
		return "exec"
	default:
		return "noop"
	}
}

func (k Kind) String() string {
	if k == KindBranchUpdate {
		return "branch-update"
	}
	return k.Verb()
}

// Instruction is a single todo-list line.
// Target is a commit id for label/reset/pick and a branch name for branch updates.
// Summary is only carried for picks, for the reader's benefit.
type Instruction struct {
	Kind    Kind
	Target  string
	Summary string
}

// Label creates a label instruction
func Label(c git.CommitID) Instruction {
	return Instruction{Kind: KindLabel, Target: string(c)}
}

// Reset creates a reset instruction
func Reset(c git.CommitID) Instruction {
	return Instruction{Kind: KindReset, Target: string(c)}
}

// Pick creates a pick instruction
func Pick(c git.CommitID, summary string) Instruction {
	return Instruction{Kind: KindPick, Target: string(c), Summary: summary}
}

// BranchUpdate creates an instruction that moves a branch to the current position
func BranchUpdate(branch string) Instruction {
	return Instruction{Kind: KindBranchUpdate, Target: branch}
}

// Line renders the instruction in git's todo-list syntax
func (i Instruction) Line(branchUpdateCommand string) string {
	switch i.Kind {
	case KindPick:
		if i.Summary == "" {
			return "pick " + i.Target
		}
		return fmt.Sprintf("pick %s %s", i.Target, i.Summary)
	case KindBranchUpdate:
		if branchUpdateCommand == "" {
			branchUpdateCommand = DefaultBranchUpdateCommand
		}
		return fmt.Sprintf("exec %s %s", branchUpdateCommand, i.Target)
	default:
		return i.Kind.Verb() + " " + i.Target
	}
}

// Plan is the ordered todo list that replays a stack onto a new base
type Plan struct {
	Base git.CommitID
	Onto git.CommitID
	// Branches is the sorted set of branches moved by the plan
	Branches     []string
	Instructions []Instruction
}

func (p *Plan) add(instructions ...Instruction) {
	p.Instructions = append(p.Instructions, instructions...)
}

// Picks returns the commits the plan replays, in order
func (p *Plan) Picks() []git.CommitID {
	var picks []git.CommitID
	for _, instruction := range p.Instructions {
		if instruction.Kind == KindPick {
			picks = append(picks, git.CommitID(instruction.Target))
		}
	}
	return picks
}

// Lines renders every instruction
func (p *Plan) Lines(branchUpdateCommand string) []string {
	lines := make([]string, 0, len(p.Instructions))
	for _, instruction := range p.Instructions {
		lines = append(lines, instruction.Line(branchUpdateCommand))
	}
	return lines
}

// Render serializes the plan as newline-joined todo lines
func (p *Plan) Render(branchUpdateCommand string) string {
	return strings.Join(p.Lines(branchUpdateCommand), "\n")
}

// WriteFile writes the rendered plan to path, replacing any existing content
func (p *Plan) WriteFile(path, branchUpdateCommand string) error {
	if err := os.WriteFile(path, []byte(p.Render(branchUpdateCommand)), 0600); err != nil {
		return fmt.Errorf("failed to write plan to %s: %w", path, err)
	}
	return nil
}
