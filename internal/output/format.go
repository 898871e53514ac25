// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mintodo/internal/service"
)

// glyphs maps status icon ids to terminal symbols.
var glyphs = map[string]string{
	"clock":                 "◷",
	"hourglass":             "⧗",
	"checkmark.circle.fill": "✔",
}

// palette maps status color ids to terminal colors.
var palette = map[string]lipgloss.Color{
	"orange": lipgloss.Color("#FF9800"),
	"blue":   lipgloss.Color("#2196F3"),
	"green":  lipgloss.Color("#8BC34A"),
}

// Printer writes tasks to a writer. Colors follow the writer's capabilities:
// a terminal gets them, a pipe or buffer gets plain text.
type Printer struct {
	w          io.Writer
	renderer   *lipgloss.Renderer
	color      bool
	dateFormat string
}

// NewPrinter creates a Printer for w. Color false disables styling even on
// a terminal.
func NewPrinter(w io.Writer, color bool, dateFormat string) *Printer {
	return &Printer{
		w:          w,
		renderer:   lipgloss.NewRenderer(w),
		color:      color,
		dateFormat: dateFormat,
	}
}

// Task formats a task line for the list.
// Format: "{N:>4}  {ICON} {TITLE}  [{STATUS}]  due {DATE}\n"
func (p *Printer) Task(num int, task service.Task) {
	fmt.Fprintf(p.w, "%4d  %s %s  [%s]  due %s\n",
		num,
		p.Icon(task.Status),
		normalizeTitle(task.Title),
		p.paint(task.Status, task.Status.String()),
		task.Due.Format(p.dateFormat))
}

// Detail formats every field of a task.
func (p *Printer) Detail(task service.Task) {
	fmt.Fprintf(p.w, "Title:       %s\n", normalizeTitle(task.Title))
	fmt.Fprintf(p.w, "Description: %s\n", normalizeDescription(task.Description))
	fmt.Fprintf(p.w, "Due:         %s\n", task.Due.Format(p.dateFormat))
	fmt.Fprintf(p.w, "Status:      %s %s\n", p.Icon(task.Status), p.paint(task.Status, task.Status.String()))
	fmt.Fprintf(p.w, "ID:          %s\n", task.ID)
}

// Icon renders the status glyph in the status color.
func (p *Printer) Icon(s service.Status) string {
	glyph, ok := glyphs[s.Icon()]
	if !ok {
		glyph = "?"
	}
	return p.paint(s, glyph)
}

func (p *Printer) paint(s service.Status, text string) string {
	if !p.color {
		return text
	}
	return p.renderer.NewStyle().Foreground(palette[s.Color()]).Render(text)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// normalizeDescription indents continuation lines under the label column.
func normalizeDescription(desc string) string {
	if strings.TrimSpace(desc) == "" {
		return "-"
	}
	desc = strings.ReplaceAll(desc, "\r\n", "\n")
	return strings.ReplaceAll(desc, "\n", "\n             ")
}
