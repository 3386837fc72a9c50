// pkg/scanner/scanner_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Test recursive discovery of header files by extension

package scanner_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnoble/aliashdr/pkg/filesystem"
	"github.com/tnoble/aliashdr/pkg/scanner"
)

func TestFind(t *testing.T) {
	mem := afero.NewMemMapFs()
	files := []string{
		"/repo/include/pkg/foo.hpp",
		"/repo/include/pkg/sub/baz.hpp",
		"/repo/src/bar.hpp",
		"/repo/src/impl.cpp",
		"/repo/README.md",
	}
	for _, path := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte("#pragma once\n"), 0644))
	}

	found, err := scanner.Find(filesystem.NewAfero(mem), "/repo", ".hpp")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"/repo/include/pkg/foo.hpp",
		"/repo/include/pkg/sub/baz.hpp",
		"/repo/src/bar.hpp",
	}, found)
}

func TestFindSkipsDotDirectories(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/repo/.git/objects/x.hpp", []byte(""), 0644))
	require.NoError(t, afero.WriteFile(mem, "/repo/include/a.hpp", []byte(""), 0644))

	found, err := scanner.Find(filesystem.NewAfero(mem), "/repo", ".hpp")
	require.NoError(t, err)

	assert.Equal(t, []string{"/repo/include/a.hpp"}, found)
}

func TestFindDeterministicOrder(t *testing.T) {
	mem := afero.NewMemMapFs()
	for _, path := range []string{"/repo/c.hpp", "/repo/a.hpp", "/repo/b.hpp"} {
		require.NoError(t, afero.WriteFile(mem, path, []byte(""), 0644))
	}

	first, err := scanner.Find(filesystem.NewAfero(mem), "/repo", ".hpp")
	require.NoError(t, err)
	second, err := scanner.Find(filesystem.NewAfero(mem), "/repo", ".hpp")
	require.NoError(t, err)

	assert.Equal(t, []string{"/repo/a.hpp", "/repo/b.hpp", "/repo/c.hpp"}, first)
	assert.Equal(t, first, second)
}

func TestFindMissingRoot(t *testing.T) {
	_, err := scanner.Find(filesystem.NewAfero(afero.NewMemMapFs()), "/nope", ".hpp")
	require.Error(t, err)
}
