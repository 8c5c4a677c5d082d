// Package clipboard copies rendered output to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Writer copies text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the Writer backed by the OS clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API, depending on platform).
type System struct{}

// WriteAll copies text to the system clipboard.
func (System) WriteAll(text string) error {
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Memory is a Writer that keeps the last copied text. Useful in tests and
// on headless machines.
type Memory struct {
	Text string
	Err  error
}

// WriteAll stores text unless Err is set.
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
