// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for the main screen.
const (
	// HeaderHeight is the title line plus its separator.
	HeaderHeight = 2

	// StatusHeight is the status bar below the carousel.
	StatusHeight = 1

	// HelpHeight is the short help line. Full help grows past it.
	HelpHeight = 1

	// MinCarouselHeight is the smallest area the carousel is drawn in.
	MinCarouselHeight = 3

	// MinCardSize is the smallest card edge, in cells, that still has a border.
	MinCardSize = 3
)
