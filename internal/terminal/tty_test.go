package terminal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/qcd/internal/apperr"
)

func TestOpenDevice_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty-*")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()

	_, err = OpenDevice(f.Name())
	if err == nil {
		t.Fatal("expected error for regular file")
	}
	if !errors.Is(err, apperr.ErrTerminalInit) {
		t.Errorf("error = %v, want ErrTerminalInit", err)
	}
}

func TestOpenDevice_Missing(t *testing.T) {
	_, err := OpenDevice(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, apperr.ErrTerminalInit) {
		t.Errorf("error = %v, want ErrTerminalInit", err)
	}
}
