package lint

import (
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/suggest"
	"github.com/leapstack-labs/tokenguard/pkg/token"
)

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string
	Severity core.Severity
	Message  string
	Pos      token.Position
	EndPos   token.Position // Optional: end of the problematic range
	Fixes    []Fix          // One fix per suggestion candidate, in rank order

	// Class details
	Category   core.Category
	ClassName  string              // Offending class as written, variant included
	Context    string              // Where the class string was found, e.g. "className" or "cn()"
	Suggestion string              // First candidate, empty when none
	Candidates []suggest.Candidate // All candidates in rank order

	// Remediation metadata
	DocumentationURL string // URL to rule documentation
	ImpactScore      int    // 0-100, used for weighting in reports
	AutoFixable      bool   // true if Fixes can be auto-applied
}

// HasSuggestion reports whether the diagnostic carries at least one candidate.
func (d Diagnostic) HasSuggestion() bool {
	return len(d.Candidates) > 0
}

// Fix represents a suggested code fix.
type Fix struct {
	Description string
	TextEdits   []TextEdit
}

// TextEdit represents a text replacement.
type TextEdit struct {
	Pos     token.Position
	EndPos  token.Position
	NewText string
}
