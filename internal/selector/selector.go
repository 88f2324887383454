// Package selector implements the interactive directory picker: a scrolling
// list over a candidate set driven by single key presses in raw mode.
package selector

import (
	"fmt"
	"log/slog"

	"github.com/starford/qcd/internal/terminal"
)

// HelpText is drawn on the last screen row while browsing.
const HelpText = "Select(Enter)/Quit(Q)/Up/Down/PgUp/PgDn"

// minRows keeps at least one candidate line, one help line and a page step of one.
const minRows = 3

// Terminal is the screen and keyboard capability the picker drives.
// Rows and columns are zero-based.
type Terminal interface {
	EnterRaw() error
	Restore() error
	ReadKey() (terminal.Key, error)
	Size() (rows, cols int)
	WriteAt(row, col int, text string, clearEOL bool)
	SetHighlight(on bool)
	SetCursor(row, col int)
	Clear()
	EraseLine(row int)
}

// Remover deletes a directory from the store after the user confirms.
type Remover interface {
	RemoveDirectory(path string) error
}

// State is the picker state.
type State int

const (
	Browsing State = iota
	ConfirmDelete
	Done
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case ConfirmDelete:
		return "confirm-delete"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Outcome is the result of a picking session. Selected is false when the
// user cancelled, including after a delete.
type Outcome struct {
	Path     string
	Selected bool
	// Removed is the path deleted from the store, if any.
	Removed string
}

// Selector browses a fixed candidate list. The list is never modified.
type Selector struct {
	term       Terminal
	candidates []string
	remover    Remover
	logger     *slog.Logger

	state   State
	top     int
	cursor  int
	outcome Outcome
}

// New creates a selector over candidates. remover may be nil, in which case
// confirmed deletions are ignored.
func New(term Terminal, candidates []string, remover Remover, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{
		term:       term,
		candidates: candidates,
		remover:    remover,
		logger:     logger,
	}
}

// Run holds the terminal in raw mode and processes keys until the user
// selects, quits or deletes an entry. Raw mode is restored on every return.
func (s *Selector) Run() (out Outcome, err error) {
	s.reset()
	if len(s.candidates) == 0 {
		s.state = Done
		return s.outcome, nil
	}

	if err := s.term.EnterRaw(); err != nil {
		s.state = Done
		return Outcome{}, err
	}
	defer func() {
		if rerr := s.term.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	s.refresh()
	for s.state != Done {
		key, err := s.term.ReadKey()
		if err != nil {
			s.state = Done
			return Outcome{}, err
		}
		s.handle(key)
	}
	return s.outcome, nil
}

// State returns the current picker state.
func (s *Selector) State() State {
	return s.state
}

func (s *Selector) reset() {
	s.state = Browsing
	s.top = 0
	s.cursor = 0
	s.outcome = Outcome{}
}

func (s *Selector) rows() int {
	rows, _ := s.term.Size()
	return max(rows, minRows)
}

func (s *Selector) handle(key terminal.Key) {
	s.logger.Debug("picker: key", slog.String("key", key.String()), slog.String("state", s.state.String()))
	switch s.state {
	case Browsing:
		s.browse(key)
	case ConfirmDelete:
		s.confirm(key)
	}
}

func (s *Selector) browse(key terminal.Key) {
	rows := s.rows()
	page := rows - 2
	n := len(s.candidates)

	switch key {
	case terminal.KeyUp:
		if s.cursor > 0 {
			s.cursor--
			if s.cursor < s.top {
				s.top = s.cursor
			}
			s.refresh()
		}

	case terminal.KeyDown:
		if s.cursor < n-1 {
			s.cursor++
			if s.cursor-s.top >= rows-2 {
				s.top = s.cursor - (rows - 2)
			}
			s.refresh()
		}

	case terminal.KeyPageUp:
		if s.cursor > 0 {
			s.cursor = max(s.cursor-page, 0)
			s.top = min(max(s.top-page, 0), s.cursor)
			s.refresh()
		}

	case terminal.KeyPageDown:
		if s.cursor < n-rows {
			s.cursor = min(s.cursor+page, n-1)
			s.top += page
			s.refresh()
		}

	case terminal.KeyEnter:
		s.finish(Outcome{Path: s.candidates[s.cursor], Selected: true})

	case 'q', 'Q', terminal.KeyCtrlC:
		s.finish(Outcome{})

	case terminal.KeyDelete:
		s.promptDelete(rows)
	}
}

func (s *Selector) promptDelete(rows int) {
	s.state = ConfirmDelete
	s.term.EraseLine(rows - 1)
	s.term.WriteAt(rows-1, 0, fmt.Sprintf("Remove %s? (y/n)", s.candidates[s.cursor]), true)
}

// confirm handles the answer to the delete prompt. The picker exits either way.
func (s *Selector) confirm(key terminal.Key) {
	if key != 'y' && key != 'Y' {
		s.finish(Outcome{})
		return
	}
	dir := s.candidates[s.cursor]
	if s.remover == nil {
		s.finish(Outcome{})
		return
	}
	if err := s.remover.RemoveDirectory(dir); err != nil {
		s.logger.Error("picker: remove failed", slog.String("path", dir), slog.String("error", err.Error()))
		s.finish(Outcome{})
		return
	}
	s.logger.Debug("picker: removed", slog.String("path", dir))
	s.finish(Outcome{Removed: dir})
}

func (s *Selector) finish(o Outcome) {
	s.outcome = o
	s.state = Done
}

// keepVisible restores top <= cursor < top+rows-1, which a terminal
// resize between keys can break.
func (s *Selector) keepVisible(rows int) {
	if s.cursor < s.top {
		s.top = s.cursor
	}
	if s.cursor-s.top > rows-2 {
		s.top = s.cursor - (rows - 2)
	}
}

func (s *Selector) refresh() {
	rows := s.rows()
	s.keepVisible(rows)

	s.term.Clear()
	for i := 0; i < rows-1 && s.top+i < len(s.candidates); i++ {
		idx := s.top + i
		if idx == s.cursor {
			s.term.SetHighlight(true)
			s.term.WriteAt(i, 0, s.candidates[idx], true)
			s.term.SetHighlight(false)
			continue
		}
		s.term.WriteAt(i, 0, s.candidates[idx], true)
	}
	s.term.WriteAt(rows-1, 0, HelpText, true)
	s.term.SetCursor(rows-1, len(HelpText))
}
