// Package headerbar renders the title line above the carousel.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Height is the fixed height of the header (title and separator).
const Height = ui.HeaderHeight

// Render returns the header for the given width: a centered gradient title
// with the subtitle dimmed next to it, then a separator.
// Narrow terminals get the title alone; very narrow ones get nothing.
func Render(title, subtitle string, width int) string {
	if width < 10 {
		return ""
	}
	t := styles.T()

	content := styles.ApplyBoldGradient(title, t.Primary, t.Secondary)
	if subtitle != "" {
		sub := t.S().Muted.Render(" · " + subtitle)
		if lipgloss.Width(content)+lipgloss.Width(sub) <= width {
			content += sub
		}
	}

	if w := lipgloss.Width(content); w < width {
		content = strings.Repeat(" ", (width-w)/2) + content
	}

	return content + "\n" + t.S().Subtle.Render(render.Separator(width))
}
