package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/carousel/internal/ui/action"
	"github.com/llehouerou/carousel/internal/ui/carouselview"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		r := m.handleKey(msg.String())
		return m, r.Cmd

	case action.Msg:
		return m, m.handleAction(msg)

	case carouselview.FrameMsg:
		var cmd tea.Cmd
		m.Carousel, cmd = m.Carousel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) resize() {
	m.Help.Width = m.Width
	m.Carousel.SetSize(m.Width, layout.ContentHeight(m.Height, layout.DefaultOpts()))
}

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	if msg.Source != carouselview.Source {
		return nil
	}
	switch a := msg.Action.(type) {
	case carouselview.FocusChanged:
		m.ScrollCount++
		m.ErrorMsg = ""
		m.SaveCarouselState()
		if a.Template != nil {
			m.logger.Debug("focus changed",
				zap.String("template", a.Template.Name),
				zap.Stringer("direction", a.Direction),
				zap.Int("steps", a.Steps))
		}
	}
	return nil
}
