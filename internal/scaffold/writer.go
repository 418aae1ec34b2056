package scaffold

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Writer creates directories and files below Root and reports each one it
// creates to Out.
type Writer struct {
	Root   string
	Out    io.Writer
	Logger *log.Logger
}

// NewWriter returns a Writer rooted at root. A nil out discards progress
// lines and a nil logger uses the default logger.
func NewWriter(root string, out io.Writer, logger *log.Logger) *Writer {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Writer{Root: root, Out: out, Logger: logger}
}

// Path resolves rel against Root.
func (w *Writer) Path(rel string) string {
	return filepath.Join(w.Root, filepath.FromSlash(rel))
}

// Exists reports whether rel exists below Root.
func (w *Writer) Exists(rel string) bool {
	_, err := os.Stat(w.Path(rel))
	return err == nil
}

// Mkdir creates each directory that does not exist yet and returns the ones
// it created.
func (w *Writer) Mkdir(dirs ...string) ([]string, error) {
	var created []string
	for _, dir := range dirs {
		full := w.Path(dir)
		if info, err := os.Stat(full); err == nil {
			if !info.IsDir() {
				return created, fmt.Errorf("%s exists and is not a directory", full)
			}
			w.Logger.Debug("directory exists", "path", dir)
			continue
		}
		if err := os.MkdirAll(full, 0755); err != nil {
			return created, fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Fprintf(w.Out, "  create  %s\n", dir)
		created = append(created, dir)
	}
	return created, nil
}

// WriteText writes text to rel, creating parent directories as needed.
func (w *Writer) WriteText(rel, text string) error {
	full := w.Path(rel)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}

	verb := "create"
	if w.Exists(rel) {
		verb = "update"
	}
	if err := os.WriteFile(full, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	fmt.Fprintf(w.Out, "  %s  %s\n", verb, rel)
	w.Logger.Debug("wrote file", "path", rel, "bytes", len(text))
	return nil
}

// WriteJSON writes v to rel as tab-indented JSON with a trailing newline.
func (w *Writer) WriteJSON(rel string, v any) error {
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", rel, err)
	}
	return w.WriteText(rel, string(data)+"\n")
}
