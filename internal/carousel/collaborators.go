package carousel

import "time"

// Ease maps normalized time in [0,1] to normalized progress.
type Ease func(t float64) float64

// Motion describes how a single property animates toward its target.
// A nil Ease is linear.
type Motion struct {
	Duration time.Duration
	Ease     Ease
}

// Host materializes and destroys visuals for templates.
type Host interface {
	Materialize(t *Template, at Point) Visual
	Destroy(v Visual)
}

// Animator moves and resizes visuals over time.
// Position and scale are animated independently.
type Animator interface {
	Move(v Visual, to Point, m Motion)
	Scale(v Visual, to float64, m Motion)
	// MoveOut animates v to the target and calls done once the motion completes.
	MoveOut(v Visual, to Point, m Motion, done func())
}
