package carousel

import "time"

// Config holds the geometry and timing of a ring. It is read once by New.
type Config struct {
	Anchor       Point   // world position of the center slot
	Spacing      float64 // distance between adjacent slots
	FocusedScale float64
	SideScale    float64

	MoveDuration   time.Duration
	ResizeDuration time.Duration
	MoveEase       Ease
	ResizeEase     Ease

	// X coordinates items spawn from and leave to.
	OffScreenLeftX  float64
	OffScreenRightX float64
}

// DefaultConfig returns the stock carousel geometry.
func DefaultConfig() Config {
	return Config{
		Spacing:         200,
		FocusedScale:    2,
		SideScale:       1,
		MoveDuration:    500 * time.Millisecond,
		ResizeDuration:  500 * time.Millisecond,
		OffScreenLeftX:  -1000,
		OffScreenRightX: 1000,
	}
}

func (c Config) moveMotion() Motion {
	return Motion{Duration: c.MoveDuration, Ease: c.MoveEase}
}

func (c Config) resizeMotion() Motion {
	return Motion{Duration: c.ResizeDuration, Ease: c.ResizeEase}
}
