package styles

import "github.com/charmbracelet/lipgloss"

// CardRole selects how a carousel card is drawn.
type CardRole int

const (
	CardSide CardRole = iota
	CardFocused
	CardPlaceholder
)

// CardBorder returns the border style for a card role.
func CardBorder(role CardRole) lipgloss.Style {
	t := T()
	switch role {
	case CardFocused:
		return lipgloss.NewStyle().Foreground(t.BorderFocus).Bold(true)
	case CardPlaceholder:
		return lipgloss.NewStyle().Foreground(t.FgSubtle)
	default:
		return lipgloss.NewStyle().Foreground(t.Border)
	}
}

// CardContent returns the style for a card's art, tinted with the template
// color when it has one. Placeholder cards are always subtle.
func CardContent(role CardRole, color string) lipgloss.Style {
	if role == CardPlaceholder {
		return T().S().Subtle
	}
	if color == "" {
		return T().S().Base
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
