package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tokenguard/internal/cli/config"
	"github.com/leapstack-labs/tokenguard/internal/cli/output"
	"github.com/leapstack-labs/tokenguard/internal/validate"
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
	_ "github.com/leapstack-labs/tokenguard/pkg/lint/rules" // register token rules
	"github.com/leapstack-labs/tokenguard/pkg/source"
)

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Path     string   // File or directory path
	Report   string   // Report style: summary, detailed
	Format   string   // Output format: auto, text, markdown, json
	Disable  []string // Rule IDs to disable
	Rules    []string // Run only specific rules
	Severity string   // Minimum severity: error, warning, info, hint
	Workers  int      // Concurrent file scans
	Fix      bool     // Apply the first suggestion of every violation
	Include  []string // Include globs
	Exclude  []string // Exclude globs
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}
	cmd := &cobra.Command{
		Use:     "validate [path]",
		Aliases: []string{"check"},
		Short:   "Check source files for non-semantic design token classes",
		Long: `Scan JavaScript and TypeScript sources for utility classes that bypass the
design system: raw sizes, spacing, palette colours, shadows and radii.

Every violation comes with the semantic token that should replace it when
one exists. The command exits non-zero when any violation is found or any
file could not be parsed.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Validate the configured root
  tokenguard validate

  # Validate one directory with one line per violation
  tokenguard validate ./src --report detailed

  # Only check colours and shadows
  tokenguard validate --rule DS03,DS04

  # Rewrite files with the first suggestion
  tokenguard validate --fix

  # Machine-readable report
  tokenguard validate --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runValidateCmd(cmd, opts)
		},
	}

	addValidateFlags(cmd, opts)
	cmd.Flags().BoolVar(&opts.Fix, "fix", false, "Apply the first suggestion of every violation")

	_ = cmd.RegisterFlagCompletionFunc("report", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ReportSummary, config.ReportDetailed}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// addValidateFlags registers the flags shared by validate and watch.
func addValidateFlags(cmd *cobra.Command, opts *ValidateOptions) {
	cmd.Flags().StringVar(&opts.Report, "report", config.DefaultReport, "Report style: summary, detailed")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: auto, text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "j", 0, "Concurrent file scans (0 = number of CPUs)")
	cmd.Flags().StringSliceVar(&opts.Include, "include", nil, "Include globs (default: all script files)")
	cmd.Flags().StringSliceVar(&opts.Exclude, "exclude", nil, "Exclude globs (default: node_modules, dist, build, .next)")
}

func runValidateCmd(cmd *cobra.Command, opts *ValidateOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	settings, err := resolveValidateSettings(cmd, cmdCtx.Cfg, opts)
	if err != nil {
		return err
	}

	v, err := newValidator(cmdCtx, settings, opts)
	if err != nil {
		return err
	}

	report, err := runValidation(cmd.Context(), v, settings.threshold)
	if err != nil {
		return err
	}

	if opts.Fix {
		summary, err := validate.ApplyFixes(report, v.Root)
		if err != nil {
			return fmt.Errorf("failed to apply fixes: %w", err)
		}
		cmdCtx.Logger.Info("applied fixes",
			"files", summary.FilesChanged,
			"edits", summary.EditsApplied,
			"skipped", summary.EditsSkipped,
		)
		if r.EffectiveMode() != output.ModeJSON {
			r.Success(fmt.Sprintf("Applied %d fixes in %d files", summary.EditsApplied, summary.FilesChanged))
			r.Println("")
		}

		// Report what is left after fixing
		if report, err = runValidation(cmd.Context(), v, settings.threshold); err != nil {
			return err
		}
	}

	if err := renderReport(r, report, settings.report == config.ReportDetailed); err != nil {
		return err
	}
	return report.Err()
}

// validateSettings is the merge of configuration and command flags.
type validateSettings struct {
	root      string
	report    string
	workers   int
	include   []string
	exclude   []string
	threshold core.Severity
}

// resolveValidateSettings applies explicitly set flags over the loaded
// configuration. When the root command loaded the config, the flags are
// already merged in; this keeps commands usable on their own.
func resolveValidateSettings(cmd *cobra.Command, cfg *config.Config, opts *ValidateOptions) (validateSettings, error) {
	s := validateSettings{
		root:    cfg.Root,
		report:  cfg.Report,
		workers: cfg.Workers,
		include: cfg.Include,
		exclude: cfg.Exclude,
	}
	if opts.Path != "" {
		s.root = opts.Path
	}
	if s.root == "" {
		s.root = config.DefaultRoot
	}

	flags := cmd.Flags()
	if flags.Changed("report") {
		s.report = opts.Report
	}
	if flags.Changed("workers") {
		s.workers = opts.Workers
	}
	if flags.Changed("include") {
		s.include = opts.Include
	}
	if flags.Changed("exclude") {
		s.exclude = opts.Exclude
	}

	switch s.report {
	case "":
		s.report = config.DefaultReport
	case config.ReportSummary, config.ReportDetailed:
	default:
		return s, fmt.Errorf("invalid --report %q: must be %s or %s", s.report, config.ReportSummary, config.ReportDetailed)
	}

	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return s, fmt.Errorf("invalid --severity %q: must be error, warning, info or hint", opts.Severity)
	}
	s.threshold = threshold
	return s, nil
}

func newValidator(cmdCtx *CommandContext, s validateSettings, opts *ValidateOptions) (*validate.Validator, error) {
	lintCfg, err := buildLintConfig(cmdCtx.Cfg, opts)
	if err != nil {
		return nil, err
	}
	analyzer, err := lint.NewAnalyzer(lintCfg)
	if err != nil {
		return nil, err
	}

	return &validate.Validator{
		Root:     s.root,
		Include:  s.include,
		Exclude:  s.exclude,
		Workers:  s.workers,
		Analyzer: analyzer,
		Extract:  source.OptionsFromConfig(cmdCtx.Cfg.Extract),
		Logger:   cmdCtx.Logger,
	}, nil
}

func runValidation(ctx context.Context, v *validate.Validator, threshold core.Severity) (*validate.Report, error) {
	report, err := v.Run(ctx)
	if err != nil {
		return nil, err
	}
	return report.FilterSeverity(threshold), nil
}

// buildLintConfig merges project lint settings with --disable and --rule.
func buildLintConfig(cfg *config.Config, opts *ValidateOptions) (*lint.Config, error) {
	lintCfg, err := lint.FromLintConfig(cfg.Lint)
	if err != nil {
		return nil, err
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Rules {
			id = strings.ToUpper(strings.TrimSpace(id))
			if _, ok := lint.GetRuleByID(id); !ok {
				return nil, fmt.Errorf("unknown rule %q", id)
			}
			enabled[id] = true
		}
		for _, rule := range lint.GetAllRules() {
			if !enabled[rule.ID()] {
				lintCfg.Disable(rule.ID())
			}
		}
	}

	return lintCfg, nil
}

// =============================================================================
// Rendering
// =============================================================================

func renderReport(r *output.Renderer, report *validate.Report, detailed bool) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(report)
	}

	styles := r.Styles()
	r.Header(1, "Design Token Report")
	if r.EffectiveMode() != output.ModeMarkdown {
		r.Println("")
	}

	r.Println(output.FormatKeyValue("Files scanned", fmt.Sprint(report.FilesScanned), 22))
	r.Println(output.FormatKeyValue("Files with violations", fmt.Sprint(len(report.Files)), 22))
	r.Println(output.FormatKeyValue("Violations", fmt.Sprint(report.TotalViolations), 22))
	if len(report.Failures) > 0 {
		r.Println(output.FormatKeyValue("Failed files", fmt.Sprint(len(report.Failures)), 22))
	}
	r.Println("")

	if report.TotalViolations == 0 && len(report.Failures) == 0 {
		r.Success("No design token violations found")
		return nil
	}

	if categories := report.Categories(); len(categories) > 0 {
		r.Header(2, "Violations by Category")
		rows := make([][]string, 0, len(categories))
		for _, c := range categories {
			rows = append(rows, []string{output.Title(c.Label()), fmt.Sprint(report.ByCategory[c])})
		}
		r.Table([]string{"Category", "Violations"}, rows, 1)
		r.Println("")
	}

	if len(report.TopSuggestions) > 0 {
		r.Header(2, "Top Suggestions")
		rows := make([][]string, 0, len(report.TopSuggestions))
		for _, s := range report.TopSuggestions {
			rows = append(rows, []string{s.From, s.To, fmt.Sprint(s.Count)})
		}
		r.Table([]string{"Class", "Suggestion", "Count"}, rows, 2)
		r.Println("")
	}

	if detailed && len(report.Files) > 0 {
		r.Header(2, "Violations")
		markdown := r.EffectiveMode() == output.ModeMarkdown
		for _, f := range report.Files {
			for _, v := range f.Violations {
				line := fmt.Sprintf("%s — %s (%s) — Suggestion: %s",
					styles.Path.Render(fmt.Sprintf("%s:%d:%d", f.Path, v.Pos.Line, v.Pos.Column)),
					styles.Class.Render(v.ClassName),
					v.Context,
					styles.Suggestion.Render(suggestionText(v)),
				)
				if markdown {
					line = "- " + line
				}
				r.Println(line)
			}
		}
		r.Println("")
	}

	if len(report.Failures) > 0 {
		r.Header(2, "Failed Files")
		for _, f := range report.Failures {
			r.StatusLine(f.Path, "error", f.Error)
		}
		r.Println("")
	}

	return nil
}

func suggestionText(v validate.Violation) string {
	switch {
	case v.Suggestion == "":
		return "none (use a semantic " + v.Category.Label() + " token)"
	case len(v.Candidates) > 1:
		return strings.Join(v.Candidates, " | ")
	default:
		return v.Suggestion
	}
}

// isViolationError reports whether err only signals findings, as opposed to
// a failure of the run itself.
func isViolationError(err error) bool {
	return errors.Is(err, validate.ErrViolationsFound) || errors.Is(err, validate.ErrFilesFailed)
}
