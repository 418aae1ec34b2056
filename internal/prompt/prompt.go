// Package prompt asks the user single-choice, yes/no, and free-text
// questions. Two implementations share the Prompter interface: a numbered
// menu over plain reader/writer pairs for pipes and tests, and a terminal UI
// for interactive sessions.
package prompt

import (
	"errors"
	"os"

	"golang.org/x/term"
)

var (
	// ErrAborted is returned when the user cancels a question (Ctrl-C or EOF).
	ErrAborted = errors.New("prompt aborted")

	// ErrNoOptions is returned by Select when there is nothing to choose from.
	ErrNoOptions = errors.New("no options to choose from")
)

// Prompter asks the user questions.
type Prompter interface {
	// Select presents options and returns the chosen one.
	Select(message string, options []string) (string, error)
	// Confirm asks a yes/no question; def is used for an empty answer.
	Confirm(message string, def bool) (bool, error)
	// Input asks for free text; def is used for an empty answer.
	Input(message, def string) (string, error)
}

// New returns a terminal prompter when both in and out are terminals, and a
// line prompter otherwise.
func New(in *os.File, out *os.File) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return NewTerminal(in, out)
	}
	return NewLine(in, out)
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
