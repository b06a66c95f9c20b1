// Package overlay draws a panel over an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws panel over base with its top-left corner at (x, y), cutting
// it at the base's edges. Both may contain ANSI styling.
func Place(base, panel string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(panel, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		lineWidth := ansi.StringWidth(line)
		if lineWidth == 0 {
			continue
		}

		start := max(x, 0)
		end := min(x+lineWidth, width)
		if start >= end {
			continue
		}
		content := ansi.Cut(line, start-x, end-x)

		b := baseLines[row]
		if w := ansi.StringWidth(b); w < width {
			b += strings.Repeat(" ", width-w)
		}
		baseLines[row] = ansi.Cut(b, 0, start) + content + ansi.Cut(b, end, width)
	}

	return strings.Join(baseLines, "\n")
}

// Center draws panel in the middle of a width×height base.
func Center(base, panel string, width, height int) string {
	lines := strings.Split(panel, "\n")
	panelWidth := 0
	for _, l := range lines {
		panelWidth = max(panelWidth, ansi.StringWidth(l))
	}
	x := (width - panelWidth) / 2
	y := (height - len(lines)) / 2
	return Place(base, panel, max(x, 0), max(y, 0), width)
}
