// Package export writes notes in formats meant for people and other tools.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/poiesic/instanote/core"
)

// Format selects the output encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q", name)
	}
}

// Write encodes notes to w in format.
func Write(w io.Writer, notes []*core.Note, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, notes)
	case FormatMarkdown:
		return WriteMarkdown(w, notes)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// ExportFile writes notes to the file at path, replacing it if it exists.
func ExportFile(path string, notes []*core.Note, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, notes, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteJSON writes notes as an indented JSON array.
func WriteJSON(w io.Writer, notes []*core.Note) error {
	if notes == nil {
		notes = []*core.Note{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(notes)
}

// WriteMarkdown writes an index table followed by one section per note.
func WriteMarkdown(w io.Writer, notes []*core.Note) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Notes\n\n")
	if len(notes) == 0 {
		fmt.Fprintf(bw, "_No notes._\n")
		return bw.Flush()
	}

	rows := [][]string{{"#", "Title", "Category", "Keywords"}}
	for i, note := range notes {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			tableCell(note.Label()),
			tableCell(note.Category),
			tableCell(strings.Join(note.Keywords, ", ")),
		})
	}
	for _, line := range formatTable(rows) {
		fmt.Fprintln(bw, line)
	}

	for _, note := range notes {
		fmt.Fprintf(bw, "\n## %s\n\n", note.Label())
		fmt.Fprintf(bw, "- **Category:** %s\n", note.Category)
		if len(note.Keywords) > 0 {
			fmt.Fprintf(bw, "- **Keywords:** %s\n", strings.Join(note.Keywords, ", "))
		}
		if note.URL != "" {
			fmt.Fprintf(bw, "- **URL:** <%s>\n", note.URL)
		} else {
			fmt.Fprintf(bw, "- **Source:** %s\n", note.Source)
		}
		if note.Summary != "" {
			fmt.Fprintf(bw, "\n**Summary:** %s\n", note.Summary)
		}
		fmt.Fprintf(bw, "\n%s\n", strings.TrimSpace(note.Content))
	}

	return bw.Flush()
}

// tableCell makes s safe to place inside a single table cell.
func tableCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// formatTable renders rows as a Markdown table whose columns are padded to
// equal display width. The first row is the header.
func formatTable(rows [][]string) []string {
	colWidths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Minimum width for the "---" separator
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	writeRow := func(cells []string) string {
		var sb strings.Builder
		sb.WriteString("|")
		for i, cell := range cells {
			sb.WriteString(" ")
			sb.WriteString(cell)
			if padding := colWidths[i] - runewidth.StringWidth(cell); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}
			sb.WriteString(" |")
		}
		return sb.String()
	}

	separator := make([]string, len(colWidths))
	for i, width := range colWidths {
		separator[i] = strings.Repeat("-", width)
	}

	result := []string{writeRow(rows[0]), writeRow(separator)}
	for _, row := range rows[1:] {
		result = append(result, writeRow(row))
	}
	return result
}
