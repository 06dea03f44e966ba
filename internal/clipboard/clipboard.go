// Package clipboard copies generated passwords to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("clipboard is not available on this system")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Copy writes text and reports the result.
func Copy(w Writer, text string) error {
	return w.WriteAll(text)
}

// CopyAsync starts the write and returns immediately. The outcome is only logged.
func CopyAsync(w Writer, text string) {
	go func() {
		if err := w.WriteAll(text); err != nil {
			slog.Warn("clipboard write failed", "error", err)
			return
		}
		slog.Debug("copied to clipboard", "length", len(text))
	}()
}
