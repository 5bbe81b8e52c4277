package validate

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"

	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
	"github.com/leapstack-labs/tokenguard/pkg/token"
)

// MaxTopSuggestions caps Report.TopSuggestions.
const MaxTopSuggestions = 10

// Report is the aggregated result of a validation run.
type Report struct {
	RunID           string                `json:"run_id"`
	Root            string                `json:"root"`
	FilesScanned    int                   `json:"files_scanned"`
	TotalViolations int                   `json:"total_violations"`
	ByCategory      map[core.Category]int `json:"by_category"`
	TopSuggestions  []SuggestionCount     `json:"top_suggestions"`
	Files           []FileResult          `json:"files"`
	Failures        []FileFailure         `json:"failures,omitempty"`
	Duration        time.Duration         `json:"duration_ns"`
}

// FileResult lists the violations of one file. Only files with at least one
// violation appear in a Report.
type FileResult struct {
	Path       string      `json:"path"`
	Violations []Violation `json:"violations"`
}

// FileFailure records a file that could not be read or parsed.
type FileFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// SuggestionCount counts how often a class was suggested a given replacement.
type SuggestionCount struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// Violation is a flattened lint.Diagnostic.
type Violation struct {
	RuleID     string         `json:"rule_id"`
	Severity   core.Severity  `json:"severity"`
	Category   core.Category  `json:"category"`
	ClassName  string         `json:"class_name"`
	Context    string         `json:"context"`
	Message    string         `json:"message"`
	Suggestion string         `json:"suggestion,omitempty"`
	Candidates []string       `json:"candidates,omitempty"`
	Pos        token.Position `json:"pos"`
	EndPos     token.Position `json:"end_pos"`

	// Fix is the edit applying the first candidate, nil when there is none.
	Fix *lint.TextEdit `json:"-"`
}

func toViolations(diags []lint.Diagnostic) []Violation {
	out := make([]Violation, 0, len(diags))
	for _, d := range diags {
		v := Violation{
			RuleID:     d.RuleID,
			Severity:   d.Severity,
			Category:   d.Category,
			ClassName:  d.ClassName,
			Context:    d.Context,
			Message:    d.Message,
			Suggestion: d.Suggestion,
			Pos:        d.Pos,
			EndPos:     d.EndPos,
		}
		for _, c := range d.Candidates {
			v.Candidates = append(v.Candidates, c.Replacement)
		}
		if len(d.Fixes) > 0 && len(d.Fixes[0].TextEdits) > 0 {
			edit := d.Fixes[0].TextEdits[0]
			v.Fix = &edit
		}
		out = append(out, v)
	}
	return out
}

// newReport folds per-file outcomes into a Report. The result does not
// depend on the order of outcomes.
func newReport(root string, outcomes []outcome) *Report {
	r := &Report{
		RunID:      uuid.New().String(),
		Root:       root,
		ByCategory: make(map[core.Category]int),
		Files:      []FileResult{},
	}

	pairs := make(map[[2]string]int)
	for _, o := range outcomes {
		switch {
		case o.failure != nil:
			r.Failures = append(r.Failures, *o.failure)
		case o.result != nil:
			r.FilesScanned++
			if len(o.result.Violations) == 0 {
				continue
			}
			r.Files = append(r.Files, *o.result)
			for _, v := range o.result.Violations {
				r.TotalViolations++
				r.ByCategory[v.Category]++
				if v.Suggestion != "" {
					pairs[[2]string{v.ClassName, v.Suggestion}]++
				}
			}
		}
	}

	sort.Slice(r.Files, func(i, j int) bool { return natural.Less(r.Files[i].Path, r.Files[j].Path) })
	sort.Slice(r.Failures, func(i, j int) bool { return natural.Less(r.Failures[i].Path, r.Failures[j].Path) })
	r.TopSuggestions = topSuggestions(pairs, MaxTopSuggestions)
	return r
}

func topSuggestions(pairs map[[2]string]int, limit int) []SuggestionCount {
	out := make([]SuggestionCount, 0, len(pairs))
	for pair, n := range pairs {
		out = append(out, SuggestionCount{From: pair[0], To: pair[1], Count: n})
	}
	slices.SortFunc(out, func(a, b SuggestionCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Categories returns the categories with at least one violation, in the
// canonical category order.
func (r *Report) Categories() []core.Category {
	var out []core.Category
	for _, c := range core.Categories {
		if r.ByCategory[c] > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Err summarizes the report as an error for exit-code purposes.
func (r *Report) Err() error {
	switch {
	case r.TotalViolations > 0:
		return fmt.Errorf("%w: %d in %d files", ErrViolationsFound, r.TotalViolations, len(r.Files))
	case len(r.Failures) > 0:
		return fmt.Errorf("%w: %d files", ErrFilesFailed, len(r.Failures))
	}
	return nil
}

// FilterSeverity returns a copy of r keeping only violations at threshold or
// more severe. Aggregates are recomputed; RunID and FilesScanned carry over.
func (r *Report) FilterSeverity(threshold core.Severity) *Report {
	outcomes := make([]outcome, 0, len(r.Files)+len(r.Failures))
	for _, f := range r.Files {
		var kept []Violation
		for _, v := range f.Violations {
			if v.Severity <= threshold {
				kept = append(kept, v)
			}
		}
		outcomes = append(outcomes, outcome{result: &FileResult{Path: f.Path, Violations: kept}})
	}
	for i := range r.Failures {
		outcomes = append(outcomes, outcome{failure: &r.Failures[i]})
	}

	filtered := newReport(r.Root, outcomes)
	filtered.RunID = r.RunID
	filtered.FilesScanned = r.FilesScanned
	filtered.Duration = r.Duration
	return filtered
}
