// Package resolver turns a partial directory name into the directory the
// shell should change to, consulting the visit store and, when the match is
// ambiguous, the interactive picker.
package resolver

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/starford/qcd/internal/storage"
	"github.com/starford/qcd/internal/store"
)

// Kind classifies how a term was resolved.
type Kind int

const (
	// NoMatch means the caller should fall back to the literal term.
	NoMatch Kind = iota
	// Complete means the term was already a usable path.
	Complete
	// Unique means exactly one stored directory matched.
	Unique
	// Picked means the user chose among several matches.
	Picked
)

func (k Kind) String() string {
	switch k {
	case Complete:
		return "complete"
	case Unique:
		return "unique"
	case Picked:
		return "picked"
	}
	return "no-match"
}

// Result is the answer for one term.
type Result struct {
	Kind Kind
	Path string
}

// Found reports whether the result carries a path to change to.
func (r Result) Found() bool {
	return r.Kind != NoMatch
}

// Picker asks the user to choose one of several candidates.
// ok is false when the user cancelled.
type Picker interface {
	Pick(candidates []string) (path string, ok bool, err error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(candidates []string) (string, bool, error)

// Pick implements Picker.
func (f PickerFunc) Pick(candidates []string) (string, bool, error) {
	return f(candidates)
}

// Resolver resolves search terms against the directory store.
type Resolver struct {
	db     store.DirectoryStore
	fs     storage.Provider
	picker Picker
	logger *slog.Logger
}

// New creates a Resolver. picker may be nil, in which case ambiguous
// matches resolve to NoMatch.
func New(db store.DirectoryStore, fs storage.Provider, picker Picker, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{db: db, fs: fs, picker: picker, logger: logger}
}

// Resolve decides what term means. Store and picker failures are logged
// and reported as NoMatch; they never abort resolution.
func (r *Resolver) Resolve(term string) Result {
	if r.IsComplete(term) {
		if filepath.IsAbs(term) {
			r.RegisterVisit(term)
		}
		return Result{Kind: Complete, Path: term}
	}
	return r.Match(term)
}

// IsComplete reports whether term should be used as-is rather than matched:
// absolute paths, "." and "..", and existing relative directories.
func (r *Resolver) IsComplete(term string) bool {
	switch {
	case filepath.IsAbs(term):
		return true
	case term == "." || term == "..":
		return true
	}
	return r.fs.IsDir(term)
}

// Match looks term up in the store without the literal-path shortcut.
// A single candidate is accepted directly; several go to the picker.
func (r *Resolver) Match(term string) Result {
	matches, err := r.db.MatchDirectories(term)
	if err != nil {
		r.logger.Error("resolve: can't query database", slog.String("term", term), slog.String("error", err.Error()))
		return Result{}
	}
	r.logger.Debug("resolve: matched", slog.String("term", term), slog.Int("count", len(matches)))

	switch len(matches) {
	case 0:
		return Result{}
	case 1:
		r.RegisterVisit(matches[0])
		return Result{Kind: Unique, Path: matches[0]}
	}

	if r.picker == nil {
		return Result{}
	}
	path, ok, err := r.picker.Pick(matches)
	if err != nil {
		r.logger.Error("resolve: picker failed", slog.String("error", err.Error()))
		return Result{}
	}
	if !ok {
		return Result{}
	}
	r.RegisterVisit(path)
	return Result{Kind: Picked, Path: path}
}

// RegisterVisit counts a visit to dir if it is a directory the process can
// enter, so stale or inaccessible paths never enter the store.
func (r *Resolver) RegisterVisit(dir string) bool {
	if !r.fs.CanEnter(dir) {
		r.logger.Debug("resolve: not registering", slog.String("path", dir))
		return false
	}
	dir = TrimTrailingSlash(dir)
	if err := r.db.AddVisit(dir); err != nil {
		r.logger.Error("resolve: can't add directory to database", slog.String("path", dir), slog.String("error", err.Error()))
		return false
	}
	return true
}

// Forget removes dir from the store.
func (r *Resolver) Forget(dir string) bool {
	if err := r.db.RemoveDirectory(dir); err != nil {
		r.logger.Error("resolve: can't delete directory from database", slog.String("path", dir), slog.String("error", err.Error()))
		return false
	}
	return true
}

// TrimTrailingSlash strips one trailing slash unless dir is the root.
func TrimTrailingSlash(dir string) string {
	if dir == "/" {
		return dir
	}
	return strings.TrimSuffix(dir, "/")
}
