package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/app/handler"
	"github.com/llehouerou/carousel/internal/keymap"
)

// handleKey offers the key to each handler in turn.
func (m *Model) handleKey(key string) handler.Result {
	return handler.Chain(key,
		m.handleQuitKeys,
		m.handleHelpKeys,
		m.handleScrollKeys,
	)
}

// handleQuitKeys handles q and ctrl+c.
func (m *Model) handleQuitKeys(key string) handler.Result {
	if m.Keys.Resolve(key) != keymap.ActionQuit {
		return handler.NotHandled
	}
	return handler.Handled(tea.Quit)
}

// handleHelpKeys toggles the full help panel.
func (m *Model) handleHelpKeys(key string) handler.Result {
	if m.Keys.Resolve(key) != keymap.ActionHelp {
		return handler.NotHandled
	}
	m.ShowFullHelp = !m.ShowFullHelp
	m.Help.ShowAll = m.ShowFullHelp
	return handler.HandledNoCmd
}

func (m *Model) handleScrollKeys(key string) handler.Result {
	switch m.Keys.Resolve(key) { //nolint:exhaustive // only handling scroll actions
	case keymap.ActionScrollLeft:
		return handler.Handled(m.Carousel.ScrollLeft())
	case keymap.ActionScrollRight:
		return handler.Handled(m.Carousel.ScrollRight())
	}
	return handler.NotHandled
}
