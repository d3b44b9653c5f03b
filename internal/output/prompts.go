package output

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via TRAIL_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (TRAIL_NO_INTERACTIVE is set)")

// ErrCanceled is returned when the user aborts a prompt
var ErrCanceled = errors.New("canceled")

// checkInteractiveAllowed returns an error if interactive mode is disabled
func checkInteractiveAllowed() error {
	if os.Getenv("TRAIL_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// SelectOne asks the user to pick one of options; typing filters the list.
// It returns the index of the chosen option.
func SelectOne(message string, options []string) (int, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return -1, err
	}
	if len(options) == 0 {
		return -1, fmt.Errorf("nothing to select from")
	}

	var selected int
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return -1, ErrCanceled
		}
		return -1, fmt.Errorf("selection failed: %w", err)
	}
	return selected, nil
}
