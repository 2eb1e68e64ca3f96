package errhandler

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancel reports whether err means the user backed out of an interactive
// prompt instead of answering it. huh forms abort with ErrUserAborted;
// survey prompts with terminal.InterruptErr.
func IsCancel(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) || errors.Is(err, terminal.InterruptErr)
}

// HandleError prints err to stderr. A prompt cancellation is not an error;
// it ends the program quietly.
func HandleError(err error) {
	if IsCancel(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
