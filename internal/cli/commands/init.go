package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/tokenguard/internal/cli/config"
	"github.com/leapstack-labs/tokenguard/internal/validate"
	"github.com/leapstack-labs/tokenguard/pkg/core"
)

// configHeader precedes the generated configuration file.
const configHeader = `# tokenguard configuration
#
# Every key can be overridden with a TOKENGUARD_ environment variable,
# e.g. TOKENGUARD_REPORT=detailed or TOKENGUARD_LINT__DISABLED=DS04.
`

// initFile is the on-disk layout written by init.
type initFile struct {
	Root    string      `yaml:"root"`
	Include []string    `yaml:"include"`
	Exclude []string    `yaml:"exclude"`
	Report  string      `yaml:"report"`
	Lint    initLint    `yaml:"lint"`
	Extract initExtract `yaml:"extract"`
}

type initLint struct {
	Disabled   []string                  `yaml:"disabled"`
	Severity   map[string]string         `yaml:"severity"`
	Rules      map[string]map[string]any `yaml:"rules"`
	Exceptions []string                  `yaml:"exceptions"`
}

type initExtract struct {
	Callees    []string `yaml:"callees"`
	Attributes []string `yaml:"attributes"`
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a tokenguard configuration file",
		Long: `Create a tokenguard.yaml with the default settings.

The file lists the scanned file globs, the report style, per-rule options
and the class helpers recognised during extraction. Edit it to tune rule
severities or to except generated files.`,
		Example: `  # Initialize in current directory
  tokenguard init

  # Initialize in another directory
  tokenguard init ./web

  # Force overwrite existing config
  tokenguard init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(NewCommandContext(cmd, ""), dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmdCtx *CommandContext, dir string, force bool) error {
	r := cmdCtx.Renderer

	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, config.ConfigFileNames[0])
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileNames[0])
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	data, err := renderInitConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	cmdCtx.Logger.Debug("wrote config", "path", configPath)

	r.StatusLine(configPath, "success", "")
	r.Println("")
	r.Success("tokenguard initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  tokenguard validate         Scan the project for raw utility classes")
	r.Println("  tokenguard rules            List the design token rules")
	r.Println("  tokenguard classify h-8     Check a single class")

	return nil
}

// renderInitConfig encodes the default configuration as YAML.
func renderInitConfig() ([]byte, error) {
	f := initFile{
		Root:    config.DefaultRoot,
		Include: validate.DefaultInclude,
		Exclude: validate.DefaultExclude,
		Report:  config.DefaultReport,
		Lint: initLint{
			Disabled: []string{},
			Severity: map[string]string{},
			Rules: map[string]map[string]any{
				"DS01": {"max_distance": 0},
				"DS02": {"max_distance": 1},
			},
			Exceptions: []string{},
		},
		Extract: initExtract{
			Callees:    core.DefaultCallees,
			Attributes: core.DefaultAttributes,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	buf.WriteString("\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
