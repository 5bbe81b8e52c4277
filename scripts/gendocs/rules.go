package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
	_ "github.com/leapstack-labs/tokenguard/pkg/lint/rules"
)

// categoryDescriptions describes what each governed category covers.
var categoryDescriptions = map[core.Category]string{
	core.CategorySizing:       "Element heights and widths on the 4-16 scale band.",
	core.CategorySpacing:      "Padding, margin, gap and space-between steps.",
	core.CategoryColor:        "Palette colours on backgrounds, text, borders, rings and fills.",
	core.CategoryShadow:       "Box shadows outside the elevation scale.",
	core.CategoryBorderRadius: "Corner radii outside the shape scale.",
}

// generateRuleDocs generates the rule documentation page.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Design Token Rules", "Rules enforced by tokenguard")
	w.GeneratedMarker()

	rules := lint.GetAllRules()
	w.Header(1, "Design Token Rules")
	w.Paragraph(fmt.Sprintf("tokenguard ships %d rules, one per governed category.", len(rules)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Critical issue that should be fixed"},
			{InlineCode("warning"), "Potential issue that should be reviewed"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be configured in `tokenguard.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled: [DS04]        # disable rules
  severity:
    DS03: error           # override severity
  rules:
    DS02:
      max_distance: 0     # rule-specific option
      exceptions: [legacy/]`)

	w.Header(2, "Rules")
	var rows [][]string
	for _, rule := range rules {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](#%s)", rule.ID(), rule.ID()),
			Bold(rule.Category().Label()),
			categoryDescriptions[rule.Category()],
		})
	}
	w.Table([]string{"Rule", "Category", "Covers"}, rows)

	for _, rule := range rules {
		writeRuleDoc(w, rule)
	}

	log.Printf("  Generated index.md")
	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule lint.Rule) {
	// Rule header with anchor: ### DS01 - tokens.sizing {#DS01}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", rule.ID(), rule.Name(), rule.ID()))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.DefaultSeverity().String())))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description()))

	if rationale := rule.Rationale(); rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rationale))
	}

	if badExample := rule.BadExample(); badExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("tsx", badExample)
	}

	if goodExample := rule.GoodExample(); goodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("tsx", goodExample)
	}

	if fix := rule.Fix(); fix != "" {
		w.Header(4, "How to Fix")
		w.Paragraph(strings.TrimSpace(fix))
	}

	if configKeys := rule.ConfigKeys(); len(configKeys) > 0 {
		w.Header(4, "Configuration")
		w.Paragraph(fmt.Sprintf("This rule accepts the following configuration options: %s",
			InlineCode(strings.Join(configKeys, ", "))))
	}

	w.Line("---")
	w.Newline()
}
