package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/ui/headerbar"
	"github.com/llehouerou/carousel/internal/ui/overlay"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	body := m.Carousel.View()
	if m.ShowFullHelp {
		body = overlay.Center(body, m.renderFullHelp(), m.Width, m.Carousel.Height())
	}

	return strings.Join([]string{
		headerbar.Render(Title, m.Catalog.Source, m.Width),
		body,
		m.renderStatus(),
		m.Help.ShortHelpView(m.Keys.Help().ShortHelp()),
	}, "\n")
}

// renderStatus shows the focused template, its position in the ring, the
// scroll count and the last error on one line.
func (m Model) renderStatus() string {
	s := styles.T().S()

	name := "(none)"
	if t := m.Carousel.Focused(); t != nil && t.Name != "" {
		name = render.Sanitize(t.Name)
	}
	index, total := m.Carousel.FocusIndex()
	left := s.Focused.Render(name) + s.Muted.Render(fmt.Sprintf("  %d/%d", index+1, total))
	if m.ErrorMsg != "" {
		left += "  " + s.Error.Render(m.ErrorMsg)
	}
	right := s.Muted.Render("scrolls " + humanize.Comma(m.ScrollCount))

	return ansi.Truncate(render.Row(left, right, m.Width), m.Width, "…")
}

// renderFullHelp renders every binding grouped by context in a bordered panel.
func (m Model) renderFullHelp() string {
	h := m.Help
	h.ShowAll = true
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Primary).
		Padding(0, 1).
		Render(h.FullHelpView(m.Keys.Help().FullHelp()))
}
