// Package storage answers the filesystem questions the resolver asks about
// candidate directories.
package storage

// Provider is the interface for filesystem checks.
type Provider interface {
	// IsDir reports whether path names an existing directory.
	IsDir(path string) bool
	// CanEnter reports whether path is a directory the process may chdir into.
	CanEnter(path string) bool
	// Getwd returns the current working directory.
	Getwd() (string, error)
}

// Verify *FS satisfies Provider at compile time.
var _ Provider = (*FS)(nil)
