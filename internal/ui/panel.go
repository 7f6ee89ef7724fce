package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
)

// ProgressBar renders a bar with percentage for done out of total.
func ProgressBar(done, total, width int) string {
	t := current
	if width < 5 {
		width = 5
	}
	pct := 0
	filled := 0
	if total > 0 {
		filled = done * width / total
		pct = done * 100 / total
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.Filled, filled) + strings.Repeat(t.Empty, width-filled)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// StatusLine is the completion counter: "<completed> / <total> tâches réalisées".
func StatusLine(completed, total int) string {
	return fmt.Sprintf("%d / %d tâches réalisées", completed, total)
}

// ItemLine renders one row of the flat listing, prefixed with the item id.
func ItemLine(it model.Item) string {
	t := current
	box, color := t.BoxUnchecked, t.Muted
	if it.Done {
		box, color = t.BoxChecked, t.Success
	}
	task := it.Task
	if r := []rune(task); len(r) > 80 {
		task = string(r[:77]) + "..."
	}
	return fmt.Sprintf("%s %s %s", C(dim, fmt.Sprintf("%3d.", it.ID)), C(color, box), task)
}

// Panel draws a framed box using the current theme.
// Widths are measured without escape codes. The first write error is returned.
func Panel(w io.Writer, lines []string) error {
	t := current
	maxw := 0
	for _, ln := range lines {
		if vw := lipgloss.Width(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := lipgloss.Width(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	var b strings.Builder
	fmt.Fprintln(&b, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(&b, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(&b, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
	_, err := io.WriteString(w, b.String())
	return err
}
