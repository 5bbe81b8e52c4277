package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/multierr"

	"github.com/leapstack-labs/tokenguard/pkg/lint"
)

// FixSummary reports what ApplyFixes changed.
type FixSummary struct {
	FilesChanged int
	EditsApplied int

	// EditsSkipped counts edits that overlapped an edit already applied.
	EditsSkipped int
}

// ApplyFixes rewrites every file in report, replacing each violation with
// its first candidate. Edits are applied back-to-front so earlier offsets
// stay valid. A failing file does not stop the others; all errors are
// returned together.
func ApplyFixes(report *Report, root string) (FixSummary, error) {
	var (
		summary FixSummary
		errs    error
	)
	single := isFile(root)

	for _, file := range report.Files {
		var edits []lint.TextEdit
		for _, v := range file.Violations {
			if v.Fix != nil {
				edits = append(edits, *v.Fix)
			}
		}
		if len(edits) == 0 {
			continue
		}

		target := root
		if !single {
			target = filepath.Join(root, filepath.FromSlash(file.Path))
		}

		applied, skipped, err := rewriteFile(target, edits)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file.Path, err))
			continue
		}
		summary.FilesChanged++
		summary.EditsApplied += applied
		summary.EditsSkipped += skipped
	}
	return summary, errs
}

func rewriteFile(path string, edits []lint.TextEdit) (applied, skipped int, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}

	out, applied, skipped := applyEdits(data, edits)
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return 0, 0, err
	}
	return applied, skipped, nil
}

// applyEdits applies edits from the highest offset down, skipping any edit
// that reaches into a region already rewritten or lies outside src.
func applyEdits(src []byte, edits []lint.TextEdit) (out []byte, applied, skipped int) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b lint.TextEdit) int {
		return b.Pos.Offset - a.Pos.Offset
	})

	out = slices.Clone(src)
	limit := len(src)
	for _, e := range sorted {
		start, end := e.Pos.Offset, e.EndPos.Offset
		if start < 0 || start > end || end > limit {
			skipped++
			continue
		}
		out = slices.Concat(out[:start], []byte(e.NewText), out[end:])
		limit = start
		applied++
	}
	return out, applied, skipped
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
