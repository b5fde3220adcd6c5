// Package output renders command results in the formats the CLI
// supports: a styled table for humans and json, yaml, csv, and value
// for scripting, mirroring the gcloud --format convention.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	sigyaml "sigs.k8s.io/yaml"
)

// Format is an output format selector.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
	FormatValue Format = "value"
)

// ParseFormat validates a user-supplied format string. Empty means
// table.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "":
		return FormatTable, nil
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatValue:
		return FormatValue, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected table, json, yaml, csv, or value)", s)
	}
}

// KV is one row of a key/value details table.
type KV struct {
	Key   string
	Value string
}

// Formatter writes command results to w in one configured format.
// Styling is applied only when w is a terminal.
type Formatter struct {
	w      io.Writer
	format Format
	color  bool
}

// New creates a Formatter. Color is enabled when w is a TTY.
func New(w io.Writer, format Format) *Formatter {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Formatter{w: w, format: format, color: color}
}

// Format returns the configured output format.
func (f *Formatter) Format() Format {
	return f.format
}

// List renders a collection. Table, csv, and value formats use the
// column/row projection; json and yaml marshal the raw API objects so
// scripts see every field.
func (f *Formatter) List(title string, columns []string, rows [][]string, raw any) error {
	switch f.format {
	case FormatJSON:
		return f.writeJSON(raw)
	case FormatYAML:
		return f.writeYAML(raw)
	case FormatCSV:
		return f.writeCSV(columns, rows)
	case FormatValue:
		return f.writeValue(rows)
	default:
		return f.writeListTable(title, columns, rows)
	}
}

// Details renders a single resource as a key/value table. Non-table
// formats marshal the raw API object instead.
func (f *Formatter) Details(title string, pairs []KV, raw any) error {
	switch f.format {
	case FormatJSON:
		return f.writeJSON(raw)
	case FormatYAML:
		return f.writeYAML(raw)
	case FormatCSV:
		rows := make([][]string, 0, len(pairs))
		for _, kv := range pairs {
			rows = append(rows, []string{kv.Key, kv.Value})
		}
		return f.writeCSV([]string{"field", "value"}, rows)
	case FormatValue:
		for _, kv := range pairs {
			if _, err := fmt.Fprintln(f.w, kv.Value); err != nil {
				return err
			}
		}
		return nil
	default:
		return f.writeDetailsTable(title, pairs)
	}
}

// Raw marshals data in the configured format without a table
// projection. Table format falls back to json.
func (f *Formatter) Raw(data any) error {
	if f.format == FormatYAML {
		return f.writeYAML(data)
	}
	return f.writeJSON(data)
}

// Line writes a plain informational line.
func (f *Formatter) Line(format string, args ...any) {
	fmt.Fprintf(f.w, format+"\n", args...)
}

// Title writes a styled title line.
func (f *Formatter) Title(s string) {
	fmt.Fprintln(f.w, f.render(titleStyle, s))
}

// Phase returns the phase string styled by its severity.
func (f *Formatter) Phase(phase string) string {
	return f.render(phaseStyle(phase), phase)
}

// ConditionStatus returns a condition status styled by its value.
func (f *Formatter) ConditionStatus(status string) string {
	return f.render(conditionStyle(status), status)
}

// Dim returns s in the de-emphasized style.
func (f *Formatter) Dim(s string) string {
	return f.render(dimStyle, s)
}

func (f *Formatter) render(style lipgloss.Style, s string) string {
	if !f.color {
		return s
	}
	return style.Render(s)
}

func (f *Formatter) writeJSON(data any) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (f *Formatter) writeYAML(data any) error {
	// Structs carry json tags only; sigs.k8s.io/yaml honors them.
	out, err := sigyaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	_, err = f.w.Write(out)
	return err
}

func (f *Formatter) writeCSV(columns []string, rows [][]string) error {
	w := csv.NewWriter(f.w)
	if err := w.Write(columns); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (f *Formatter) writeValue(rows [][]string) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(f.w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) writeListTable(title string, columns []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(f.w, f.render(warningStyle, "No "+strings.ToLower(title)+" found"))
		return err
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(f.render(titleStyle, title))
		b.WriteString("\n")
	}

	var header strings.Builder
	for i, col := range columns {
		if i > 0 {
			header.WriteString("  ")
		}
		fmt.Fprintf(&header, "%-*s", widths[i], strings.ToUpper(col))
	}
	b.WriteString(f.render(headerStyle, header.String()))
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *Formatter) writeDetailsTable(title string, pairs []KV) error {
	width := 0
	for _, kv := range pairs {
		if len(kv.Key) > width {
			width = len(kv.Key)
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(f.render(titleStyle, title))
		b.WriteString("\n")
	}
	for _, kv := range pairs {
		if kv.Key == "" && kv.Value == "" {
			b.WriteString("\n")
			continue
		}
		if kv.Value == "" {
			b.WriteString(f.render(sectionStyle, kv.Key))
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "%-*s  %s\n", width, kv.Key, kv.Value)
	}

	_, err := io.WriteString(f.w, b.String())
	return err
}

// FormatTime converts an RFC 3339 timestamp to a fixed human display
// form. Unparseable input is returned unchanged.
func FormatTime(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}
