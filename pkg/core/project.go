package core

// LintConfig holds lint rule configuration.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options
	Rules map[string]RuleOptions `koanf:"rules"`

	// Exceptions lists path substrings; matching files are skipped by every rule
	Exceptions []string `koanf:"exceptions"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any

// ExtractConfig controls how class strings are located in source files.
type ExtractConfig struct {
	// Callees are the class-joining helpers whose string arguments are inspected
	Callees []string `koanf:"callees"`

	// Attributes are the JSX attribute names holding class strings
	Attributes []string `koanf:"attributes"`

	// SkipSyntaxCheck disables the esbuild parse check before scanning
	SkipSyntaxCheck bool `koanf:"skip_syntax_check"`
}

// DefaultCallees are the class-joining helpers recognised out of the box.
var DefaultCallees = []string{"clsx", "cn", "classnames", "classNames"}

// DefaultAttributes are the JSX attributes recognised out of the box.
var DefaultAttributes = []string{"className", "class"}
