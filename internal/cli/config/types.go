// Package config provides configuration management for the tokenguard CLI.
//
// Lint and extraction settings are defined in pkg/core so that library
// users can build them without the CLI; they are re-exported here via type
// aliases for convenience.
package config

import "github.com/leapstack-labs/tokenguard/pkg/core"

// LintConfig is an alias for the shared lint configuration.
type LintConfig = core.LintConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// ExtractConfig is an alias for the shared extraction configuration.
type ExtractConfig = core.ExtractConfig

// Config holds all CLI configuration options.
type Config struct {
	Root         string        `koanf:"root"`
	Include      []string      `koanf:"include"`
	Exclude      []string      `koanf:"exclude"`
	Workers      int           `koanf:"workers"`
	Report       string        `koanf:"report"`
	OutputFormat string        `koanf:"output"`
	Verbose      bool          `koanf:"verbose"`
	Lint         *LintConfig   `koanf:"lint"`
	Extract      ExtractConfig `koanf:"extract"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when there is none. Not read from configuration.
	ProjectRoot string `koanf:"-"`
}

// Report styles.
const (
	ReportSummary  = "summary"
	ReportDetailed = "detailed"
)

// Default configuration values.
const (
	DefaultRoot    = "."
	DefaultReport  = ReportSummary
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultWorkers = 0      // GOMAXPROCS
)

// ConfigFileNames are searched, in order, in each directory walked upward
// from the working directory.
//
//nolint:revive // config.ConfigFileNames is the established name
var ConfigFileNames = []string{"tokenguard.yaml", "tokenguard.yml", ".tokenguard.yaml"}

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "TOKENGUARD_"
