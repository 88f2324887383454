// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/starford/qcd/internal/apperr"
	"github.com/starford/qcd/internal/resolver"
	"github.com/starford/qcd/internal/selector"
	"github.com/starford/qcd/internal/storage"
	"github.com/starford/qcd/internal/store"
	"github.com/starford/qcd/internal/terminal"
)

// NoChange is the answer that leaves the shell in its current directory.
const NoChange = "."

// Request is the parsed command line. When several flags are set the first
// in field order wins.
type Request struct {
	Version bool
	Help    bool
	Purge   bool
	Add     bool
	Delete  bool
	List    bool
	Args    []string
}

// jump reports whether the request is a directory change rather than a
// list maintenance action.
func (r Request) jump() bool {
	return !r.Add && !r.Delete && !r.List
}

// Run executes one invocation and writes exactly one line to stdout: the
// directory the calling shell should cd to, or "." when nothing should change.
// Failures are logged to stderr and never suppress that line.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		version: "dev",
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		fs:      storage.NewFS(),
		picker:  TerminalPicker,
	}

	for _, opt := range opts {
		opt(app)
	}

	answer := NoChange
	defer func() {
		fmt.Fprintln(app.stdout, answer)
	}()

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	logger := newLogger(app.stderr, app.config.App)
	slog.SetDefault(logger)

	answer = app.dispatch(ctx, logger)
	return nil
}

func newLogger(w io.Writer, cfg ApplicationConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (a *application) dispatch(ctx context.Context, logger *slog.Logger) string {
	log := logger.With(slog.String("component", "qcd.main"))
	req := a.request

	switch {
	case req.Version:
		a.showVersion()
		return NoChange
	case req.Help:
		ShowUsage(a.stderr, "qcd")
		return NoChange
	}

	dbPath, err := a.config.Store.ResolvedPath()
	if err != nil {
		log.Error("main: can't locate database", slog.String("error", err.Error()))
		return a.fallback()
	}

	if req.Purge {
		if err := store.Purge(dbPath); err != nil {
			log.Error("main: can't purge database", slog.String("error", err.Error()))
		}
		return NoChange
	}

	if req.jump() && len(req.Args) == 0 {
		return a.homeDir(log)
	}
	if req.jump() && len(req.Args) > 1 {
		log.Error("cd: too many arguments", slog.String("error", apperr.ErrUsage.Error()))
		return NoChange
	}

	db, err := store.Open(dbPath)
	if err != nil {
		logger.Error("db: can't open database", slog.String("component", "qcd.db"),
			slog.String("path", dbPath), slog.String("error", err.Error()))
		return a.fallback()
	}
	defer db.Close()

	opsLog := logger.With(slog.String("component", "qcd.ops"))
	termLog := logger.With(slog.String("component", "qcd.term"))
	r := resolver.New(db, a.fs, a.picker(db, termLog), opsLog)

	switch {
	case req.Add:
		if cwd, err := a.fs.Getwd(); err != nil {
			log.Error("main: can't add current directory", slog.String("error", err.Error()))
		} else {
			r.RegisterVisit(cwd)
		}
		return NoChange

	case req.Delete:
		if cwd, err := a.fs.Getwd(); err != nil {
			log.Error("main: can't delete current directory", slog.String("error", err.Error()))
		} else {
			r.Forget(cwd)
		}
		return NoChange

	case req.List:
		if err := ctx.Err(); err != nil {
			return NoChange
		}
		if res := r.Match(store.MatchAll); res.Found() {
			return res.Path
		}
		return NoChange
	}

	term := req.Args[0]
	if err := ctx.Err(); err != nil {
		return term
	}
	res := r.Resolve(term)
	log.Debug("main: resolved", slog.String("term", term), slog.String("kind", res.Kind.String()))
	if res.Found() {
		return res.Path
	}
	return term
}

// fallback is the answer when the store is unusable: the literal term for a
// jump, otherwise no change.
func (a *application) fallback() string {
	req := a.request
	if req.jump() && len(req.Args) == 1 {
		return req.Args[0]
	}
	return NoChange
}

func (a *application) homeDir(log *slog.Logger) string {
	if a.home != "" {
		return a.home
	}
	home, err := homedir.Dir()
	if err != nil {
		log.Error("main: can't find home directory", slog.String("error", err.Error()))
		return NoChange
	}
	return home
}

func (a *application) showVersion() {
	fmt.Fprintf(a.stderr, "qcd version %s\n", a.version)
}

// ShowUsage writes the command summary to w.
func ShowUsage(w io.Writer, argv0 string) {
	fmt.Fprintf(w, "Usage: %s [options] {directory}\n", argv0)
	fmt.Fprintf(w, "    -v, --version  Show version\n")
	fmt.Fprintf(w, "    -a, --add      Add the current directory to the list\n")
	fmt.Fprintf(w, "    -d, --del      Delete the current directory from the list\n")
	fmt.Fprintf(w, "    -l, --list     Show/edit the complete directory list\n")
	fmt.Fprintf(w, "        --purge    Remove all stored directories\n")
}

// TerminalPicker runs the interactive selector on the controlling terminal.
func TerminalPicker(remover selector.Remover, logger *slog.Logger) resolver.Picker {
	return resolver.PickerFunc(func(candidates []string) (string, bool, error) {
		tty, err := terminal.Open()
		if err != nil {
			return "", false, err
		}
		defer tty.Close()

		rows, cols := tty.Size()
		logger.Debug("term: initial terminal size", slog.Int("rows", rows), slog.Int("cols", cols))

		out, err := selector.New(tty, candidates, remover, logger).Run()
		if err != nil {
			return "", false, err
		}
		return out.Path, out.Selected, nil
	})
}
