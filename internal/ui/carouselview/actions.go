package carouselview

import (
	"time"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/ui/action"
)

// Source is the action.Msg source of this component.
const Source = "carousel"

// FocusChanged reports the template that ended up in the center after a scroll.
type FocusChanged struct {
	Template  *carousel.Template
	Index     int // position in the ring's template sequence
	Direction carousel.Direction
	Steps     int // 2 when the placeholder was skipped
}

// ActionType implements action.Action.
func (a FocusChanged) ActionType() string { return "carousel.focus_changed" }

// FrameMsg advances running animations.
type FrameMsg struct {
	At time.Time
}

// Verify interfaces at compile time.
var _ action.Action = FocusChanged{}

// ActionMsg wraps a carousel action in an action.Msg.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
