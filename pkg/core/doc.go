// Package core defines the shared language of the tokenguard system.
//
// This package contains:
//   - Governed categories (Category) and their canonical names
//   - Diagnostic severities and rule metadata (Severity, RuleInfo)
//   - Configuration types shared by the CLI and the lint framework (LintConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
