package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/store"
)

// Table renders tabular CLI output with aligned columns. Column widths
// follow the widest cell, measured with lipgloss so styled cells still
// line up.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with the given title and headers.
func NewTable(title string, headers []string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    [][]string{},
	}
}

// AddRow appends a row of cells.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table. Empty tables render as an empty string so
// callers can print the result unconditionally.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(styles.Title.Render(t.Title))
		b.WriteString("\n")
	}

	for i, h := range t.Headers {
		if i > 0 {
			b.WriteString(sepStyle.Render("|"))
		}
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
	}
	b.WriteString("\n")

	for i := range t.Headers {
		if i > 0 {
			b.WriteString(sepStyle.Render("|"))
		}
		b.WriteString(sepStyle.Render(strings.Repeat("-", widths[i]+2)))
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(t.Headers) {
				break
			}
			if i > 0 {
				b.WriteString(sepStyle.Render("|"))
			}
			b.WriteString(rowStyle.Render(pad(cell, widths[i])))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pad right-pads a cell to the column width. Measured with lipgloss so
// cells that arrive pre-styled keep their alignment.
func pad(cell string, width int) string {
	gap := width - lipgloss.Width(cell)
	if gap <= 0 {
		return cell
	}
	return cell + strings.Repeat(" ", gap)
}

// MonitorTable lays out a snapshot's monitors.
func MonitorTable(title string, monitors []align.Monitor) *Table {
	t := NewTable(title, []string{"Monitor", "X", "Y", "Resolution"})
	for _, m := range monitors {
		t.AddRow(m.ID, FormatCoord(m.X), FormatCoord(m.Y), m.Resolution())
	}
	return t
}

// CorrectionTable lays out a correction plan.
func CorrectionTable(corrections []align.Correction) *Table {
	t := NewTable("Planned corrections", []string{"Monitor", "Axis", "From", "To", "Delta"})
	for _, c := range corrections {
		t.AddRow(
			c.MonitorID,
			strings.ToUpper(string(c.Axis)),
			FormatCoord(c.OldValue),
			FormatCoord(c.NewValue),
			FormatDelta(c.Delta),
		)
	}
	return t
}

// ResultTable lays out per-correction apply outcomes.
func ResultTable(results []store.ApplyResult) *Table {
	t := NewTable("Applied corrections", []string{"Monitor", "Axis", "Change", "Status"})
	for _, r := range results {
		change := fmt.Sprintf("%s -> %s",
			FormatCoord(r.Correction.OldValue), FormatCoord(r.Correction.NewValue))
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		t.AddRow(r.Correction.MonitorID, strings.ToUpper(string(r.Correction.Axis)), change, status)
	}
	return t
}

// SnapshotTable lays out stored snapshots, marking the one align acts on.
func SnapshotTable(snaps []store.SnapshotInfo, latestID string) *Table {
	t := NewTable("Snapshots", []string{"", "Snapshot", "Taken"})
	for _, s := range snaps {
		marker := ""
		if s.ID == latestID {
			marker = "*"
		}
		t.AddRow(marker, s.ID, s.TakenAt.Format("2006-01-02 15:04:05"))
	}
	return t
}

// FormatCoord renders a signed coordinate.
func FormatCoord(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// FormatDelta renders a correction delta with an explicit sign.
func FormatDelta(d int32) string {
	return fmt.Sprintf("%+d", d)
}
