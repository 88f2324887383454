package store

// DirectoryStore defines the operations on the ranked directory list.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with fakes.
type DirectoryStore interface {
	GetCount(path string) (int, error)
	AddVisit(path string) error
	RemoveDirectory(path string) error
	MatchDirectories(term string) ([]string, error)
	Close() error
}

// Verify *DB satisfies DirectoryStore at compile time.
var _ DirectoryStore = (*DB)(nil)
