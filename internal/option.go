package internal

import (
	"io"
	"log/slog"

	"github.com/starford/qcd/internal/resolver"
	"github.com/starford/qcd/internal/selector"
	"github.com/starford/qcd/internal/storage"
)

// Option is a functional option for configuring the application.
type Option func(*application)

// PickerFactory builds the interactive picker. remover deletes entries the
// user removes while picking.
type PickerFactory func(remover selector.Remover, logger *slog.Logger) resolver.Picker

type application struct {
	config  *Config
	request Request
	version string
	home    string
	stdout  io.Writer
	stderr  io.Writer
	fs      storage.Provider
	picker  PickerFactory
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithRequest sets the parsed command line.
func WithRequest(req Request) Option {
	return func(a *application) {
		a.request = req
	}
}

// WithVersion sets the version reported by --version.
func WithVersion(v string) Option {
	return func(a *application) {
		a.version = v
	}
}

// WithHome sets the directory answered when no term is given.
func WithHome(dir string) Option {
	return func(a *application) {
		a.home = dir
	}
}

// WithOutput redirects the answer line and the diagnostic stream.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *application) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithFilesystem replaces the filesystem checks.
func WithFilesystem(fs storage.Provider) Option {
	return func(a *application) {
		a.fs = fs
	}
}

// WithPicker replaces the terminal picker.
func WithPicker(f PickerFactory) Option {
	return func(a *application) {
		a.picker = f
	}
}
