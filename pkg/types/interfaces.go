package types

import (
	"io/fs"
)

// FS is the filesystem interface required for aliashdr operations.
// Discovery, header reads, and the write phase all go through it so the
// pipeline can run against in-memory fixtures in tests.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
}
