// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Carousel actions
	ActionScrollLeft  Action = "scroll_left"  // evict left, feed from the right
	ActionScrollRight Action = "scroll_right" // evict right, feed from the left
)
