// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/carousel/internal/ui"

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	StatusHeight int
	HelpHeight   int // grows when full help is shown
}

// DefaultOpts returns the fixed chrome of the main screen with short help.
func DefaultOpts() ContentOpts {
	return ContentOpts{
		HeaderHeight: ui.HeaderHeight,
		StatusHeight: ui.StatusHeight,
		HelpHeight:   ui.HelpHeight,
	}
}

// ContentHeight calculates the height left for the carousel: the terminal
// height minus header, status bar and help, never less than the minimum.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.StatusHeight
	height -= opts.HelpHeight
	return max(height, ui.MinCarouselHeight)
}
