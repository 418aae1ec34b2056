package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line prompts with numbered menus on a plain reader/writer pair.
type Line struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLine creates a line-based prompter reading answers from r.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{reader: bufio.NewReader(r), w: w}
}

// Select presents a numbered list and returns the selected option. An empty
// answer picks the first option; an invalid one is reported and asked again.
func (l *Line) Select(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	fmt.Fprintf(l.w, "\n%s\n", message)
	for i, opt := range options {
		fmt.Fprintf(l.w, "  %d) %s\n", i+1, opt)
	}

	for {
		fmt.Fprintf(l.w, "Enter number [1-%d] (1): ", len(options))

		line, err := l.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return options[0], nil
		}

		num, err := strconv.Atoi(line)
		if err == nil && num >= 1 && num <= len(options) {
			return options[num-1], nil
		}
		fmt.Fprintf(l.w, "invalid selection %q: choose 1-%d\n", line, len(options))
	}
}

// Confirm asks a yes/no question until it gets an answer.
func (l *Line) Confirm(message string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(l.w, "%s [%s]: ", message, hint)

		line, err := l.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(l.w, "invalid answer %q: expected yes or no\n", line)
	}
}

// Input asks for free text.
func (l *Line) Input(message, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(l.w, "%s (%s): ", message, def)
	} else {
		fmt.Fprintf(l.w, "%s: ", message)
	}

	line, err := l.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// readLine returns the next trimmed line. A final line without a newline is
// accepted; EOF with nothing read is ErrAborted.
func (l *Line) readLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
