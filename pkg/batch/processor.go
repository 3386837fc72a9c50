// Package batch orchestrates a generation run: parse every candidate
// header, partition successes from failures, and, in an explicit second
// phase, write the alias files. Parsing never writes anything; writing
// never re-parses.
package batch

import (
	"github.com/rs/zerolog"

	"github.com/tnoble/aliashdr/pkg/config"
	"github.com/tnoble/aliashdr/pkg/errors"
	"github.com/tnoble/aliashdr/pkg/header"
	"github.com/tnoble/aliashdr/pkg/logging"
	"github.com/tnoble/aliashdr/pkg/types"
)

// Failure records one header that could not be processed.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes a parse phase.
type Result struct {
	// Processed is the number of headers parsed successfully.
	Processed int
	// Failures lists the headers that could not be parsed, in scan order.
	Failures []Failure
}

// AllProcessed reports whether every candidate parsed successfully. It
// gates the confirmation prompt before the write phase.
func (r Result) AllProcessed() bool {
	return len(r.Failures) == 0
}

// Processor runs the parse and write phases over an injected filesystem.
type Processor struct {
	fs        types.FS
	parseOpts header.Options
	aliasOpts header.AliasOptions
	logger    zerolog.Logger
}

// New builds a Processor from the run configuration.
func New(fsys types.FS, cfg config.Config) *Processor {
	return &Processor{
		fs: fsys,
		parseOpts: header.Options{
			Guard:    cfg.Guard,
			Resolver: header.NearestRoot(cfg.IncludeDir),
		},
		aliasOpts: header.AliasOptions{
			Product:       cfg.Product,
			SourceExt:     cfg.SourceExt,
			DeprecatedExt: cfg.DeprecatedExt,
			Warning:       cfg.Warning,
			Generator:     config.ToolName,
			DetailsURL:    cfg.DetailsURL,
		},
		logger: logging.GetLogger("batch"),
	}
}

// Process parses every candidate path and partitions the outcomes. Missing
// guards and missing include roots are recorded per file and never abort
// the batch; any other error (an unreadable file, typically) does.
func (p *Processor) Process(paths []string) ([]*header.Source, Result, error) {
	var sources []*header.Source
	var failures []Failure

	for _, path := range paths {
		src, err := header.Parse(p.fs, path, p.parseOpts)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrMissingIncludeGuard) ||
				errors.IsErrorCode(err, errors.ErrMissingIncludeRoot) {
				p.logger.Debug().Str("path", path).Err(err).Msg("Header skipped")
				failures = append(failures, Failure{Path: path, Err: err})
				continue
			}
			return nil, Result{}, err
		}
		sources = append(sources, src)
	}

	return sources, Result{Processed: len(sources), Failures: failures}, nil
}

// Write builds and writes one alias per parsed header, overwriting any
// existing file at the target path. It returns the number of files written;
// a write error aborts the phase.
func (p *Processor) Write(sources []*header.Source) (int, error) {
	for i, src := range sources {
		alias := header.BuildAlias(src, p.aliasOpts)
		if err := p.fs.WriteFile(alias.Path, []byte(alias.Content), 0644); err != nil {
			return i, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", alias.Path)
		}
		p.logger.Debug().Str("path", alias.Path).Msg("Alias written")
	}
	return len(sources), nil
}
