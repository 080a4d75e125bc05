package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/suf-labs/suf-gen/internal/ui"
)

// Writer writes project files below Root.
type Writer struct {
	Fs      afero.Fs
	Root    string
	Console *ui.Console
}

// NewWriter returns a Writer on the real filesystem.
func NewWriter(root string, console *ui.Console) *Writer {
	return &Writer{Fs: afero.NewOsFs(), Root: root, Console: console}
}

// Write creates the parent directories of rel, then creates or overwrites the
// file with content and reports it on the console.
func (w *Writer) Write(rel, content string) error {
	target := filepath.Join(w.Root, filepath.FromSlash(rel))

	if err := w.Fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err := afero.WriteFile(w.Fs, target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	if w.Console != nil {
		w.Console.Created(displayPath(target))
	}
	return nil
}

// displayPath prefixes relative paths with "./".
func displayPath(p string) string {
	p = filepath.ToSlash(p)
	if filepath.IsAbs(p) || strings.HasPrefix(p, "./") {
		return p
	}
	return "./" + p
}
