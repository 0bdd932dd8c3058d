package magickit

import "time"

// Identifier is the interface shared by the raw libmagic binding and
// its decorators. Implementations return the libmagic result string
// for a file path or for in-memory content.
//
// Use this type in function signatures so callers can pass either a
// bare *Magic or a caching wrapper:
//
//	scanner := magickit.NewScanner(ident)
type Identifier interface {
	// File returns the libmagic result for the file at path.
	File(path string) (string, error)

	// Buffer returns the libmagic result for the given content.
	Buffer(data []byte) (string, error)

	// Close releases any underlying resources.
	Close() error
}

// FileInfo describes a file considered during a scan or watch.
// It carries just enough metadata for selectors to filter on.
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}
