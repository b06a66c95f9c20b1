// Package carousel implements an infinite horizontal carousel: a fixed ring of
// slots around a center focus, fed cyclically from a finite template list.
package carousel

// Template is the source definition an Item is materialized from.
// Templates compare by identity: two distinct *Template values are different
// templates even when their fields are equal.
type Template struct {
	Name  string
	Color string   // lipgloss color, e.g. "#a78bfa" or "212"
	Art   []string // body lines shown under the name
}

// Point is a 2D coordinate in carousel world units.
type Point struct {
	X, Y float64
}
