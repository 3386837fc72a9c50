// pkg/header/header_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Test pretext extraction and include directive derivation

package header_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnoble/aliashdr/pkg/errors"
	"github.com/tnoble/aliashdr/pkg/filesystem"
	"github.com/tnoble/aliashdr/pkg/header"
	"github.com/tnoble/aliashdr/pkg/types"
)

func writeFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return filesystem.NewAfero(mem)
}

func defaultOptions() header.Options {
	return header.Options{
		Guard:    "#pragma once",
		Resolver: header.NearestRoot("include"),
	}
}

func TestParse(t *testing.T) {
	fsys := writeFS(t, map[string]string{
		"/repo/include/pkg/foo.hpp": "// Copyright\n\n#pragma once\n\nint x;\n",
	})

	src, err := header.Parse(fsys, "/repo/include/pkg/foo.hpp", defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "/repo/include/pkg/foo.hpp", src.Path)
	assert.Equal(t, "// Copyright\n\n#pragma once", src.Pretext)
	assert.Equal(t, "#include <pkg/foo.hpp>", src.Include)
}

func TestParsePretextStopsAtFirstGuard(t *testing.T) {
	fsys := writeFS(t, map[string]string{
		"/repo/include/a.hpp": "#pragma once\n// a comment mentioning #pragma once again\n",
	})

	src, err := header.Parse(fsys, "/repo/include/a.hpp", defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "#pragma once", src.Pretext)
}

func TestParseMissingGuard(t *testing.T) {
	fsys := writeFS(t, map[string]string{
		"/repo/include/pkg/bad.hpp": "#ifndef BAD_HPP\n#define BAD_HPP\n#endif\n",
	})

	_, err := header.Parse(fsys, "/repo/include/pkg/bad.hpp", defaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingIncludeGuard))
}

func TestParseMissingIncludeRoot(t *testing.T) {
	fsys := writeFS(t, map[string]string{
		"/repo/src/bar.hpp": "#pragma once\n",
	})

	_, err := header.Parse(fsys, "/repo/src/bar.hpp", defaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingIncludeRoot))
}

func TestParseReadErrorPropagates(t *testing.T) {
	fsys := filesystem.NewAfero(afero.NewMemMapFs())

	_, err := header.Parse(fsys, "/missing.hpp", defaultOptions())
	require.Error(t, err)
	// Not one of the recorded per-file failure kinds
	assert.False(t, errors.IsErrorCode(err, errors.ErrMissingIncludeGuard))
	assert.False(t, errors.IsErrorCode(err, errors.ErrMissingIncludeRoot))
}

func TestNearestRoot(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantRoot string
		wantOK   bool
	}{
		{
			name:     "direct_include_parent",
			path:     "/repo/include/foo.hpp",
			wantRoot: "/repo/include",
			wantOK:   true,
		},
		{
			name:     "nested_under_include",
			path:     "/repo/include/moveit/robot_model/robot_model.hpp",
			wantRoot: "/repo/include",
			wantOK:   true,
		},
		{
			name:     "nearest_of_two_include_ancestors",
			path:     "/repo/include/sub/include/pkg/x.hpp",
			wantRoot: "/repo/include/sub/include",
			wantOK:   true,
		},
		{
			name:   "no_include_ancestor",
			path:   "/repo/src/bar.hpp",
			wantOK: false,
		},
		{
			name:   "include_as_filename_does_not_count",
			path:   "/repo/src/include",
			wantOK: false,
		},
	}

	resolve := header.NearestRoot("include")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, ok := resolve(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRoot, root)
			}
		})
	}
}

func TestNearestRootCustomDirName(t *testing.T) {
	resolve := header.NearestRoot("headers")

	root, ok := resolve("/repo/headers/pkg/a.hpp")
	require.True(t, ok)
	assert.Equal(t, "/repo/headers", root)

	_, ok = resolve("/repo/include/pkg/a.hpp")
	assert.False(t, ok)
}
