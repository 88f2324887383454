package terminal

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/starford/qcd/internal/apperr"
)

// DevicePath is the controlling terminal. The picker never draws on stdout,
// which the calling shell consumes.
const DevicePath = "/dev/tty"

const (
	defaultRows = 25
	defaultCols = 80
)

// TTY is a raw-mode capable terminal backed by the controlling tty device.
type TTY struct {
	f     *os.File
	out   *termenv.Output
	state *term.State
}

// Open opens the controlling terminal for reading keys and drawing.
func Open() (*TTY, error) {
	return OpenDevice(DevicePath)
}

// OpenDevice opens the terminal at path. It fails with apperr.ErrTerminalInit
// when path cannot be opened or is not a terminal.
func OpenDevice(path string) (*TTY, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: terminal: open %s: %w", apperr.ErrTerminalInit, path, err)
	}
	if !isatty.IsTerminal(f.Fd()) {
		f.Close()
		return nil, fmt.Errorf("%w: terminal: %s is not a terminal", apperr.ErrTerminalInit, path)
	}
	return &TTY{
		f:   f,
		out: termenv.NewOutput(f, termenv.WithProfile(termenv.ANSI)),
	}, nil
}

// EnterRaw switches the terminal to raw mode, remembering the previous state.
func (t *TTY) EnterRaw() error {
	if t.state != nil {
		return nil
	}
	st, err := term.MakeRaw(int(t.f.Fd()))
	if err != nil {
		return fmt.Errorf("%w: terminal: raw mode: %w", apperr.ErrTerminalInit, err)
	}
	t.state = st
	return nil
}

// Restore returns the terminal to the mode saved by EnterRaw.
func (t *TTY) Restore() error {
	if t.state == nil {
		return nil
	}
	st := t.state
	t.state = nil
	if err := term.Restore(int(t.f.Fd()), st); err != nil {
		return fmt.Errorf("terminal: restore: %w", err)
	}
	return nil
}

// ReadKey blocks until the next key arrives.
func (t *TTY) ReadKey() (Key, error) {
	var buf [16]byte
	n, err := t.f.Read(buf[:])
	if err != nil {
		return KeyUnknown, fmt.Errorf("terminal: read key: %w", err)
	}
	return Decode(buf[:n]), nil
}

// Size returns the terminal size, falling back to 25x80 when it is unknown.
func (t *TTY) Size() (rows, cols int) {
	w, h, err := term.GetSize(int(t.f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultRows, defaultCols
	}
	return h, w
}

// WriteAt draws text at the zero-based row and column, truncated to the
// terminal width, optionally erasing the rest of the line.
func (t *TTY) WriteAt(row, col int, text string, clearEOL bool) {
	_, cols := t.Size()
	t.out.MoveCursor(row+1, col+1)
	if width := cols - col; width > 0 {
		fmt.Fprint(t.out, runewidth.Truncate(text, width, ""))
	}
	if clearEOL {
		t.out.ClearLineRight()
	}
}

// SetHighlight toggles reverse video for subsequent writes.
func (t *TTY) SetHighlight(on bool) {
	if on {
		fmt.Fprint(t.out, termenv.CSI+termenv.ReverseSeq+"m")
		return
	}
	fmt.Fprint(t.out, termenv.CSI+"27m")
}

// SetCursor moves the cursor to the zero-based row and column.
func (t *TTY) SetCursor(row, col int) {
	t.out.MoveCursor(row+1, col+1)
}

// Clear erases the whole screen.
func (t *TTY) Clear() {
	t.out.ClearScreen()
}

// EraseLine erases the zero-based row.
func (t *TTY) EraseLine(row int) {
	t.out.MoveCursor(row+1, 1)
	t.out.ClearLine()
}

// Close restores the terminal if needed, clears the picker off the screen
// and releases the device.
func (t *TTY) Close() error {
	restoreErr := t.Restore()
	t.out.ClearScreen()
	if err := t.f.Close(); err != nil {
		return fmt.Errorf("terminal: close: %w", err)
	}
	return restoreErr
}
