package tween

import (
	"time"

	"github.com/llehouerou/carousel/internal/carousel"
)

type property int

const (
	propPosition property = iota
	propScale
)

type key struct {
	visual carousel.Visual
	prop   property
}

type tween struct {
	fromPos, toPos     carousel.Point
	fromScale, toScale float64

	elapsed  time.Duration
	duration time.Duration
	ease     carousel.Ease
	done     func()
}

func (t *tween) progress() float64 {
	if t.duration <= 0 || t.elapsed >= t.duration {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}

// Engine is a frame-stepped carousel.Animator.
//
// Each visual has at most one running tween per property; starting another
// replaces it, beginning from the visual's current value. Engine is driven by
// Advance and is not safe for concurrent use.
type Engine struct {
	tweens map[key]*tween
	order  []key // start order, for deterministic stepping
}

// NewEngine creates an idle engine.
func NewEngine() *Engine {
	return &Engine{tweens: make(map[key]*tween)}
}

var _ carousel.Animator = (*Engine)(nil)

// Move animates v's position to the target.
func (e *Engine) Move(v carousel.Visual, to carousel.Point, m carousel.Motion) {
	e.start(key{v, propPosition}, &tween{
		fromPos:  v.Position(),
		toPos:    to,
		duration: m.Duration,
		ease:     m.Ease,
	})
}

// Scale animates v's scale to the target.
func (e *Engine) Scale(v carousel.Visual, to float64, m carousel.Motion) {
	e.start(key{v, propScale}, &tween{
		fromScale: v.Scale(),
		toScale:   to,
		duration:  m.Duration,
		ease:      m.Ease,
	})
}

// MoveOut animates v's position to the target and calls done when it arrives.
// A later Move on the same visual does not cancel done: the replacing tween
// inherits it.
func (e *Engine) MoveOut(v carousel.Visual, to carousel.Point, m carousel.Motion, done func()) {
	e.start(key{v, propPosition}, &tween{
		fromPos:  v.Position(),
		toPos:    to,
		duration: m.Duration,
		ease:     m.Ease,
		done:     done,
	})
}

func (e *Engine) start(k key, t *tween) {
	if prev, ok := e.tweens[k]; ok {
		if t.done == nil {
			t.done = prev.done
		}
	} else {
		e.order = append(e.order, k)
	}
	e.tweens[k] = t
}

// Busy reports whether any tween is running.
func (e *Engine) Busy() bool {
	return len(e.tweens) > 0
}

// Len returns the number of running tweens.
func (e *Engine) Len() int {
	return len(e.tweens)
}

// Advance steps every tween by dt, applies the new values and fires the
// completion callbacks of tweens that finished.
func (e *Engine) Advance(dt time.Duration) {
	if len(e.tweens) == 0 {
		return
	}

	var finished []func()
	kept := e.order[:0]
	for _, k := range e.order {
		t, ok := e.tweens[k]
		if !ok {
			continue
		}
		t.elapsed += dt
		apply(k, t)

		if t.progress() < 1 {
			kept = append(kept, k)
			continue
		}
		delete(e.tweens, k)
		if t.done != nil {
			finished = append(finished, t.done)
		}
	}
	e.order = kept

	// Callbacks run after bookkeeping so they may start new tweens.
	for _, done := range finished {
		done()
	}
}

// Finish completes every running tween immediately.
func (e *Engine) Finish() {
	for e.Busy() {
		var longest time.Duration
		for _, t := range e.tweens {
			longest = max(longest, t.duration-t.elapsed)
		}
		e.Advance(max(longest, 0))
	}
}

func apply(k key, t *tween) {
	p := t.progress()
	f := p
	if t.ease != nil {
		f = t.ease(p)
	}
	if p >= 1 {
		f = 1
	}

	switch k.prop {
	case propPosition:
		k.visual.SetPosition(carousel.Point{
			X: lerp(t.fromPos.X, t.toPos.X, f),
			Y: lerp(t.fromPos.Y, t.toPos.Y, f),
		})
	case propScale:
		k.visual.SetScale(lerp(t.fromScale, t.toScale, f))
	}
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
