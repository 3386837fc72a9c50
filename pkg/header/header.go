// Package header parses source headers and composes their deprecated
// aliases. Parsing extracts the "pretext" (everything through the include
// guard, so license banners survive verbatim) and derives the include
// directive a downstream file needs to reach the header through its include
// root.
package header

import (
	"path/filepath"
	"strings"

	"github.com/tnoble/aliashdr/pkg/errors"
	"github.com/tnoble/aliashdr/pkg/types"
)

// Source is one successfully parsed header. Read-only after Parse.
type Source struct {
	// Path is the path the header was read from.
	Path string
	// Pretext is the leading file content through the end of the first
	// occurrence of the guard marker.
	Pretext string
	// Include is the full include directive pointing back at this header,
	// e.g. `#include <moveit/robot_model/robot_model.hpp>`.
	Include string
}

// RootResolver locates the include root a header path is resolved against.
// It reports false when the path has no include root.
type RootResolver func(path string) (root string, ok bool)

// Options control parsing. Zero fields are not defaulted here; callers
// build Options from config.
type Options struct {
	// Guard is the include-guard marker terminating the pretext.
	Guard string
	// Resolver locates the include root for a header path.
	Resolver RootResolver
}

// NearestRoot returns a RootResolver that walks a path's ancestors and
// picks the nearest one whose final segment equals dirName.
func NearestRoot(dirName string) RootResolver {
	return func(path string) (string, bool) {
		dir := filepath.Dir(path)
		for {
			if filepath.Base(dir) == dirName {
				return dir, true
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return "", false
			}
			dir = parent
		}
	}
}

// Parse reads the header at path and extracts its pretext and include
// directive. It fails with ErrMissingIncludeGuard when the guard marker is
// absent and with ErrMissingIncludeRoot when no include root exists for the
// path; both are expected per-file outcomes the batch records and skips.
// Read errors are returned as-is and abort the run.
func Parse(fsys types.FS, path string, opts Options) (*Source, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := string(data)
	idx := strings.Index(content, opts.Guard)
	if idx < 0 {
		return nil, errors.Newf(errors.ErrMissingIncludeGuard,
			"no include guard found in %s, unable to generate pretext", path)
	}
	pretext := content[:idx+len(opts.Guard)]

	root, ok := opts.Resolver(path)
	if !ok {
		return nil, errors.Newf(errors.ErrMissingIncludeRoot,
			"no include directory found for %s, unable to generate relative include", path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrMissingIncludeRoot,
			"cannot relativize %s against %s", path, root)
	}

	return &Source{
		Path:    path,
		Pretext: pretext,
		Include: "#include <" + filepath.ToSlash(rel) + ">",
	}, nil
}
