package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title converts a label such as "border radius" to "Border Radius".
func Title(s string) string {
	return titleCaser.String(s)
}

// FormatHeader returns a plain underlined heading.
func FormatHeader(title string) string {
	return title + "\n" + strings.Repeat("=", len(title))
}

// FormatKeyValue returns "key: value" with the key padded to width.
func FormatKeyValue(key, value string, width int) string {
	return fmt.Sprintf("%-*s %s", width+1, key+":", value)
}

// Table renders rows under headers: a box table in text mode and a pipe
// table in markdown mode. Columns listed in alignRight are right aligned.
func (r *Renderer) Table(headers []string, rows [][]string, alignRight ...int) {
	t := table.NewWriter()

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}

	configs := make([]table.ColumnConfig, 0, len(alignRight))
	for _, col := range alignRight {
		configs = append(configs, table.ColumnConfig{Number: col + 1, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)

	style := table.StyleLight
	if !r.isTTY {
		style = table.StyleDefault
	}
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	if r.EffectiveMode() == ModeMarkdown {
		r.Println(t.RenderMarkdown())
		return
	}
	r.Println(t.Render())
}
