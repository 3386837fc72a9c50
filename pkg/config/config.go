// Package config loads aliashdr's layered configuration: built-in defaults,
// an optional config file in the scan root, then ALIASHDR_* environment
// variables. All keys default to the conventions of the tree the tool was
// written for, so running with no config at all does the right thing.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tnoble/aliashdr/pkg/errors"
)

// ToolName is interpolated into the generated disclaimer so readers of a
// generated header know where it came from.
const ToolName = "aliashdr"

// Config holds every knob of the generation pipeline.
type Config struct {
	// Product is the project name named in the disclaimer banner.
	Product string `koanf:"product" toml:"product"`
	// Guard is the include-guard marker that terminates the pretext.
	Guard string `koanf:"guard" toml:"guard"`
	// SourceExt is the extension of headers to scan for.
	SourceExt string `koanf:"source_ext" toml:"source_ext"`
	// DeprecatedExt is the extension of the generated alias headers.
	DeprecatedExt string `koanf:"deprecated_ext" toml:"deprecated_ext"`
	// IncludeDir is the directory name that marks an include root.
	IncludeDir string `koanf:"include_dir" toml:"include_dir"`
	// Warning is the text inside the generated #pragma message.
	Warning string `koanf:"warning" toml:"warning"`
	// DetailsURL, when non-empty, adds a "See <url> for extra details."
	// line to the disclaimer.
	DetailsURL string `koanf:"details_url" toml:"details_url"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Product:       "MoveIt 2",
		Guard:         "#pragma once",
		SourceExt:     ".hpp",
		DeprecatedExt: ".h",
		IncludeDir:    "include",
		Warning:       ".h header is obsolete. Please use the .hpp header instead.",
		DetailsURL:    "https://github.com/moveit/moveit2/pull/3113",
	}
}

// candidate config file names, tried in order in the scan root
var configFileNames = []string{".aliashdr.toml", "aliashdr.toml", ".aliashdr.yaml", "aliashdr.yaml"}

// Load builds the effective configuration for a run. root is the directory
// being scanned; explicit, when non-empty, names a config file that must
// exist and overrides the per-root lookup.
func Load(root, explicit string) (Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"product":        defaults.Product,
		"guard":          defaults.Guard,
		"source_ext":     defaults.SourceExt,
		"deprecated_ext": defaults.DeprecatedExt,
		"include_dir":    defaults.IncludeDir,
		"warning":        defaults.Warning,
		"details_url":    defaults.DetailsURL,
	}, "."), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file, explicit or discovered in the scan root
	if explicit != "" {
		if err := k.Load(file.Provider(explicit), parserFor(explicit)); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", explicit)
		}
	} else {
		for _, name := range configFileNames {
			path := filepath.Join(root, name)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
					return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config from %s", path)
				}
				break
			}
		}
	}

	// 3. Environment overrides (ALIASHDR_SOURCE_EXT, ...)
	if err := k.Load(env.Provider("ALIASHDR_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ALIASHDR_"))
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func (c Config) validate() error {
	if c.Guard == "" {
		return errors.New(errors.ErrConfigValid, "guard marker must not be empty")
	}
	if !strings.HasPrefix(c.SourceExt, ".") {
		return errors.Newf(errors.ErrConfigValid, "source_ext %q must start with a dot", c.SourceExt)
	}
	if !strings.HasPrefix(c.DeprecatedExt, ".") {
		return errors.Newf(errors.ErrConfigValid, "deprecated_ext %q must start with a dot", c.DeprecatedExt)
	}
	if c.SourceExt == c.DeprecatedExt {
		return errors.Newf(errors.ErrConfigValid, "source_ext and deprecated_ext are both %q", c.SourceExt)
	}
	if c.IncludeDir == "" {
		return errors.New(errors.ErrConfigValid, "include_dir must not be empty")
	}
	return nil
}
