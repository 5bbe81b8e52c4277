package validate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/tokenguard/pkg/lint"
	"github.com/leapstack-labs/tokenguard/pkg/source"
)

var (
	// ErrViolationsFound is returned by Report.Err when any rule fired.
	ErrViolationsFound = errors.New("design token violations found")

	// ErrFilesFailed is returned by Report.Err when files could not be scanned.
	ErrFilesFailed = errors.New("some files could not be scanned")
)

// DefaultInclude matches every script file the extractor understands.
var DefaultInclude = []string{"**/*.{js,jsx,ts,tsx,mjs,cjs}"}

// DefaultExclude skips dependency and build output directories.
var DefaultExclude = []string{"**/node_modules/**", "**/dist/**", "**/build/**", "**/.next/**"}

// Validator scans a source tree.
type Validator struct {
	// Root is a directory or a single file. Defaults to ".".
	Root string

	// Include and Exclude are doublestar globs matched against slash-separated
	// paths relative to Root. Nil means DefaultInclude / DefaultExclude.
	Include []string
	Exclude []string

	// Workers bounds concurrent file scans. Zero means GOMAXPROCS.
	Workers int

	// Analyzer runs the rules. Nil means every registered rule with defaults.
	Analyzer *lint.Analyzer

	// Extract configures class string extraction.
	Extract source.ExtractOptions

	Logger *slog.Logger
}

// outcome is the result of scanning one file; exactly one field is set.
type outcome struct {
	result  *FileResult
	failure *FileFailure
}

// Run discovers and scans the files under Root.
// The returned error is reserved for problems with the run itself (bad
// globs, missing root, cancellation); violations are reported in the Report.
func (v *Validator) Run(ctx context.Context) (*Report, error) {
	started := time.Now()
	logger := v.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	analyzer := v.Analyzer
	if analyzer == nil {
		var err error
		if analyzer, err = lint.NewAnalyzer(lint.NewConfig()); err != nil {
			return nil, err
		}
	}

	root := v.root()
	include, exclude, err := v.patterns()
	if err != nil {
		return nil, err
	}

	files, err := discover(ctx, root, include, exclude)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", "root", root, "count", len(files))

	workers := v.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]outcome, len(files))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, rel := range files {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			outcomes[i] = scanFile(root, rel, analyzer, v.Extract, logger)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := newReport(root, outcomes)
	report.Duration = time.Since(started)
	logger.Info("validation complete",
		"files", report.FilesScanned,
		"violations", report.TotalViolations,
		"failures", len(report.Failures),
		"duration", report.Duration,
	)
	return report, nil
}

func (v *Validator) root() string {
	if v.Root == "" {
		return "."
	}
	return v.Root
}

func (v *Validator) patterns() (include, exclude []string, err error) {
	include, exclude = v.Include, v.Exclude
	if include == nil {
		include = DefaultInclude
	}
	if exclude == nil {
		exclude = DefaultExclude
	}
	for _, p := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, nil, fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return include, exclude, nil
}

// discover returns slash-separated paths relative to root, in walk order.
// When root is a file, it is returned as "." and scanned regardless of the
// include patterns.
func discover(ctx context.Context, root string, include, exclude []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root: %w", err)
	}
	if !info.IsDir() {
		return []string{"."}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			// prune directories whose whole subtree is excluded
			if rel != "." && matchAny(exclude, path.Join(rel, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !source.IsSupported(rel) || !matchAny(include, rel) || matchAny(exclude, rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

// Dirs returns the directories under Root that discovery would descend
// into, for file watching. It is empty when Root is a file.
func (v *Validator) Dirs(ctx context.Context) ([]string, error) {
	root := v.root()
	_, exclude, err := v.patterns()
	if err != nil {
		return nil, err
	}
	if !isDir(root) {
		return nil, nil
	}

	var dirs []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel != "." && matchAny(exclude, path.Join(filepath.ToSlash(rel), "_")) {
			return filepath.SkipDir
		}
		dirs = append(dirs, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return dirs, nil
}

// Excluded reports whether a path relative to Root matches an exclude glob.
func (v *Validator) Excluded(rel string) bool {
	_, exclude, err := v.patterns()
	if err != nil {
		return false
	}
	return matchAny(exclude, filepath.ToSlash(rel))
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// resolve maps a discovered path back to the file system.
func resolve(root, rel string) string {
	if rel == "." {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}

// displayPath is the path shown in reports and matched by exceptions.
func displayPath(root, rel string) string {
	if rel == "." {
		return filepath.ToSlash(root)
	}
	return rel
}

func scanFile(root, rel string, analyzer *lint.Analyzer, opts source.ExtractOptions, logger *slog.Logger) outcome {
	name := displayPath(root, rel)

	data, err := os.ReadFile(resolve(root, rel))
	if err != nil {
		logger.Warn("failed to read file", "path", name, "error", err)
		return outcome{failure: &FileFailure{Path: name, Error: err.Error()}}
	}

	sources, err := source.Extract(name, data, opts)
	if err != nil {
		logger.Warn("failed to parse file", "path", name, "error", err)
		return outcome{failure: &FileFailure{Path: name, Error: err.Error()}}
	}

	diags := analyzer.AnalyzeFile(name, sources)
	logger.Debug("scanned file", "path", name, "sources", len(sources), "violations", len(diags))
	return outcome{result: &FileResult{Path: name, Violations: toViolations(diags)}}
}
