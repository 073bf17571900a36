package vrt

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var prefixColours = []lipgloss.Color{"6", "5", "3", "2", "4", "1"}

// prefixWriter writes complete lines to out, each preceded by prefix, and
// keeps an unprefixed copy of everything written. Writers for different
// tasks share mu so lines never interleave.
type prefixWriter struct {
	mu      *sync.Mutex
	out     io.Writer
	prefix  string
	pending []byte
	capture bytes.Buffer
}

func newPrefixWriter(mu *sync.Mutex, out io.Writer, prefix string) *prefixWriter {
	return &prefixWriter{mu: mu, out: out, prefix: prefix}
}

func (w *prefixWriter) Write(p []byte) (int, error) {
	w.capture.Write(p)
	w.pending = append(w.pending, p...)

	for {
		idx := bytes.IndexByte(w.pending, '\n')
		if idx < 0 {
			break
		}
		if err := w.emit(w.pending[:idx+1]); err != nil {
			return len(p), err
		}
		w.pending = w.pending[idx+1:]
	}
	return len(p), nil
}

// Flush writes a trailing partial line, if any.
func (w *prefixWriter) Flush() error {
	if len(w.pending) == 0 {
		return nil
	}
	line := append(w.pending, '\n')
	w.pending = nil
	return w.emit(line)
}

// Output returns everything written, trimmed of surrounding whitespace.
func (w *prefixWriter) Output() string {
	return strings.TrimSpace(w.capture.String())
}

func (w *prefixWriter) emit(line []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := io.WriteString(w.out, w.prefix); err != nil {
		return err
	}
	_, err := w.out.Write(line)
	return err
}

// taskPrefix renders "[name] " in a colour picked by index. Colour is only
// emitted when out is a terminal.
func taskPrefix(out io.Writer, name string, index int) string {
	style := lipgloss.NewRenderer(out).NewStyle().
		Bold(true).
		Foreground(prefixColours[index%len(prefixColours)])
	return style.Render("["+name+"]") + " "
}
