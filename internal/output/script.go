package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ScriptPrinter writes todo lists, colored when the destination is a terminal
type ScriptPrinter struct {
	writer io.Writer
	styled bool
}

// NewScriptPrinter creates a printer that styles output only for terminals
func NewScriptPrinter(w io.Writer) *ScriptPrinter {
	return &ScriptPrinter{writer: w, styled: IsTerminal(w)}
}

// NewScriptPrinterWithStyle creates a printer with styling forced on or off
func NewScriptPrinterWithStyle(w io.Writer, styled bool) *ScriptPrinter {
	return &ScriptPrinter{writer: w, styled: styled}
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes the lines followed by a final newline
func (p *ScriptPrinter) Print(lines []string) error {
	for _, line := range lines {
		if p.styled {
			line = styleLine(line)
		}
		if _, err := fmt.Fprintln(p.writer, line); err != nil {
			return err
		}
	}
	return nil
}

func styleLine(line string) string {
	verb, rest, ok := strings.Cut(line, " ")
	if !ok {
		return verbStyle(verb).Render(verb)
	}

	switch verb {
	case "pick":
		id, summary, _ := strings.Cut(rest, " ")
		rest = id
		if summary != "" {
			rest += " " + dimStyle.Render(summary)
		}
	case "exec":
		// the branch name is the final argument of the update command
		if i := strings.LastIndex(rest, " "); i >= 0 {
			rest = rest[:i+1] + branchStyle.Render(rest[i+1:])
		}
	}
	return verbStyle(verb).Render(verb) + " " + rest
}
