// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpConfigLoad  Op = "load configuration"
	OpCatalogLoad Op = "load template catalog"
	OpInitialize  Op = "initialize carousel"

	// State persistence
	OpStateOpen    Op = "open saved state"
	OpStateLoad    Op = "load saved state"
	OpStateSave    Op = "save state"
	OpStateRestore Op = "restore focused template"

	// Logging
	OpLogOpen Op = "open debug log"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
