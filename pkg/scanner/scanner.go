// Package scanner discovers candidate header files for a run.
package scanner

import (
	"path/filepath"
	"strings"

	"github.com/tnoble/aliashdr/pkg/errors"
	"github.com/tnoble/aliashdr/pkg/logging"
	"github.com/tnoble/aliashdr/pkg/types"
)

// Find walks root recursively and returns every file whose name ends with
// ext, in deterministic lexicographic order. Dot-directories (.git and
// friends) are skipped. Walk errors abort the scan.
func Find(fsys types.FS, root, ext string) ([]string, error) {
	logger := logging.GetLogger("scanner")

	var found []string
	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrScan, "failed to read directory %s", dir)
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				if strings.HasPrefix(entry.Name(), ".") {
					continue
				}
				if err := walk(path); err != nil {
					return err
				}
				continue
			}
			if strings.HasSuffix(entry.Name(), ext) {
				found = append(found, path)
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Str("ext", ext).Int("count", len(found)).Msg("Scan complete")
	return found, nil
}
