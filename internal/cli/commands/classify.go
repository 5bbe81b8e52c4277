package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tokenguard/internal/cli/output"
	"github.com/leapstack-labs/tokenguard/pkg/classify"
	"github.com/leapstack-labs/tokenguard/pkg/classname"
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint/rules"
	"github.com/leapstack-labs/tokenguard/pkg/suggest"
)

// Classification statuses.
const (
	statusSemantic    = "semantic"
	statusNonSemantic = "non-semantic"
	statusUngoverned  = "ungoverned"
)

const classifyPrompt = "tokenguard> "

// ClassifyOptions holds options for the classify command.
type ClassifyOptions struct {
	Format string // Output format: auto, text, markdown, json
}

// ClassifyResult describes one class token.
type ClassifyResult struct {
	Class       string        `json:"class"`
	Governed    bool          `json:"governed"`
	Category    core.Category `json:"category"`
	NonSemantic bool          `json:"non_semantic"`
	Suggestions []string      `json:"suggestions"`
}

// Status summarizes the result in one word.
func (c ClassifyResult) Status() string {
	switch {
	case !c.Governed:
		return statusUngoverned
	case c.NonSemantic:
		return statusNonSemantic
	default:
		return statusSemantic
	}
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand() *cobra.Command {
	opts := &ClassifyOptions{}
	cmd := &cobra.Command{
		Use:   "classify [class...]",
		Short: "Classify utility classes and suggest semantic tokens",
		Long: `Classify one or more utility classes.

For every class the command prints the governed category, whether the value
is semantic and the ranked replacement suggestions. Arguments may hold
several space-separated classes.

Without arguments an interactive prompt starts; type class strings to
classify them, .help for commands and .quit to exit.`,
		Example: `  # Classify a single class
  tokenguard classify h-8

  # Classify a whole class string
  tokenguard classify "md:p-4 bg-red-600 shadow-xl rounded-md"

  # Machine-readable output
  tokenguard classify --format json shadow-none

  # Interactive mode
  tokenguard classify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd, opts.Format)
			resolver, err := classifyResolver(cmdCtx)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return runClassifyREPL(cmd, cmdCtx.Renderer, resolver)
			}
			return renderClassification(cmdCtx.Renderer, classifyValue(strings.Join(args, " "), resolver))
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: auto, text, markdown, json")

	return cmd
}

// classifyResolver builds the resolver from the project's lint options so
// suggestions match what validate reports.
func classifyResolver(cmdCtx *CommandContext) (suggest.Resolver, error) {
	lc, err := cmdCtx.Cfg.LintConfig()
	if err != nil {
		return suggest.Resolver{}, fmt.Errorf("invalid lint configuration: %w", err)
	}
	return rules.Resolver(lc), nil
}

// classifyValue classifies every class in a space-separated class string.
func classifyValue(value string, resolver suggest.Resolver) []ClassifyResult {
	tokens := classname.ExtractTailwindClasses(value)
	results := make([]ClassifyResult, 0, len(tokens))
	for _, tok := range tokens {
		res := classify.Classify(tok)
		cr := ClassifyResult{
			Class:       tok.Raw,
			Governed:    res.IsGoverned,
			Category:    res.Category,
			NonSemantic: res.IsGoverned && res.IsNonSemantic,
			Suggestions: []string{},
		}
		if cr.NonSemantic {
			if s := suggest.Replacements(resolver.ResolveToken(res.Category, tok)); s != nil {
				cr.Suggestions = s
			}
		}
		results = append(results, cr)
	}
	return results
}

func renderClassification(r *output.Renderer, results []ClassifyResult) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(results)
	}
	if len(results) == 0 {
		r.Println("No classes found")
		return nil
	}

	styles := r.Styles()
	rows := make([][]string, 0, len(results))
	for _, c := range results {
		category := "-"
		if c.Governed {
			category = c.Category.Label()
		}
		status := c.Status()
		switch status {
		case statusNonSemantic:
			status = styles.Warning.Render(status)
		case statusSemantic:
			status = styles.Success.Render(status)
		default:
			status = styles.Muted.Render(status)
		}
		suggestion := "-"
		if len(c.Suggestions) > 0 {
			suggestion = styles.Suggestion.Render(strings.Join(c.Suggestions, ", "))
		} else if c.NonSemantic {
			suggestion = "none"
		}
		rows = append(rows, []string{styles.Class.Render(c.Class), category, status, suggestion})
	}
	r.Table([]string{"Class", "Category", "Status", "Suggestions"}, rows)
	return nil
}

// =============================================================================
// Interactive mode
// =============================================================================

func runClassifyREPL(cmd *cobra.Command, r *output.Renderer, resolver suggest.Resolver) error {

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          classifyPrompt,
		HistoryFile:     classifyHistoryFile(),
		AutoComplete:    newClassifyCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "tokenguard class REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if quit := handleClassifyLine(r, resolver, line); quit {
			break
		}
	}
	return nil
}

// handleClassifyLine processes one REPL line and reports whether the
// session should end.
func handleClassifyLine(r *output.Renderer, resolver suggest.Resolver, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ".") {
		switch strings.ToLower(strings.Fields(line)[0]) {
		case ".quit", ".exit":
			return true
		case ".help":
			printClassifyHelp(r.Writer())
		case ".rules":
			for _, c := range classify.Order() {
				r.Printf("  %-14s %s\n", c.String(), c.Label())
			}
		default:
			r.Error(fmt.Sprintf("Unknown command: %s (type .help for commands)", line))
		}
		return false
	}

	if err := renderClassification(r, classifyValue(line, resolver)); err != nil {
		r.Error(err.Error())
	}
	r.Println("")
	return false
}

func printClassifyHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .rules          List the governed categories
  .quit / .exit   Exit the REPL

Anything else is classified as a class string, e.g.
  md:h-8 px-4 bg-blue-500 shadow-none
`
	_, _ = fmt.Fprintln(w, help)
}

// classifyHistoryFile keeps history next to the user cache, or disables it.
func classifyHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "tokenguard")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return ""
	}
	return filepath.Join(dir, "classify_history")
}

func newClassifyCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".rules"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
