// Package filesystem provides filesystem implementations for aliashdr.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by the CLI and an afero adapter used to run
// the pipeline against in-memory filesystems in tests.
package filesystem
