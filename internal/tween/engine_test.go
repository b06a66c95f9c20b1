package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/carousel/internal/carousel"
)

type box struct {
	pos   carousel.Point
	scale float64
}

func (b *box) Position() carousel.Point     { return b.pos }
func (b *box) SetPosition(p carousel.Point) { b.pos = p }
func (b *box) Scale() float64               { return b.scale }
func (b *box) SetScale(s float64)           { b.scale = s }

func linear(d time.Duration) carousel.Motion {
	return carousel.Motion{Duration: d, Ease: Linear}
}

func TestEngine_MoveLinear(t *testing.T) {
	e := NewEngine()
	b := &box{}

	e.Move(b, carousel.Point{X: 100, Y: 50}, linear(time.Second))
	require.True(t, e.Busy())

	e.Advance(250 * time.Millisecond)
	assert.InDelta(t, 25, b.pos.X, 1e-9)
	assert.InDelta(t, 12.5, b.pos.Y, 1e-9)

	e.Advance(time.Second)
	assert.Equal(t, carousel.Point{X: 100, Y: 50}, b.pos)
	assert.False(t, e.Busy())
}

func TestEngine_NilEaseIsLinear(t *testing.T) {
	e := NewEngine()
	b := &box{scale: 1}

	e.Scale(b, 3, carousel.Motion{Duration: time.Second})
	e.Advance(500 * time.Millisecond)

	assert.InDelta(t, 2, b.scale, 1e-9)
}

func TestEngine_PositionAndScaleIndependent(t *testing.T) {
	e := NewEngine()
	b := &box{scale: 1}

	e.Move(b, carousel.Point{X: 10}, linear(time.Second))
	e.Scale(b, 2, linear(500*time.Millisecond))
	assert.Equal(t, 2, e.Len())

	e.Advance(500 * time.Millisecond)
	assert.InDelta(t, 2, b.scale, 1e-9)
	assert.InDelta(t, 5, b.pos.X, 1e-9)
	assert.Equal(t, 1, e.Len())
}

func TestEngine_RetargetStartsFromCurrent(t *testing.T) {
	e := NewEngine()
	b := &box{}

	e.Move(b, carousel.Point{X: 100}, linear(time.Second))
	e.Advance(500 * time.Millisecond)
	require.InDelta(t, 50, b.pos.X, 1e-9)

	e.Move(b, carousel.Point{X: 0}, linear(time.Second))
	assert.Equal(t, 1, e.Len())

	e.Advance(500 * time.Millisecond)
	assert.InDelta(t, 25, b.pos.X, 1e-9)
}

func TestEngine_MoveOutCallsDoneOnce(t *testing.T) {
	e := NewEngine()
	b := &box{}
	calls := 0

	e.MoveOut(b, carousel.Point{X: -1000}, linear(time.Second), func() { calls++ })
	e.Advance(900 * time.Millisecond)
	assert.Zero(t, calls)

	e.Advance(200 * time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.InDelta(t, -1000, b.pos.X, 1e-9, "final value applied before done")

	e.Advance(time.Second)
	assert.Equal(t, 1, calls)
}

func TestEngine_RetargetKeepsDone(t *testing.T) {
	e := NewEngine()
	b := &box{}
	calls := 0

	e.MoveOut(b, carousel.Point{X: -1000}, linear(time.Second), func() { calls++ })
	e.Move(b, carousel.Point{X: 5}, linear(time.Second))
	e.Finish()

	assert.Equal(t, 1, calls)
	assert.InDelta(t, 5, b.pos.X, 1e-9)
}

func TestEngine_ZeroDuration(t *testing.T) {
	e := NewEngine()
	b := &box{}

	e.Move(b, carousel.Point{X: 7}, carousel.Motion{})
	e.Advance(0)

	assert.InDelta(t, 7, b.pos.X, 1e-9)
	assert.False(t, e.Busy())
}

func TestEngine_FinishRunsCallbacksThatStartTweens(t *testing.T) {
	e := NewEngine()
	a, b := &box{}, &box{}

	e.MoveOut(a, carousel.Point{X: 1}, linear(time.Second), func() {
		e.Move(b, carousel.Point{X: 2}, linear(time.Second))
	})
	e.Finish()

	assert.False(t, e.Busy())
	assert.InDelta(t, 1, a.pos.X, 1e-9)
	assert.InDelta(t, 2, b.pos.X, 1e-9)
}

func TestEngine_DrivesRing(t *testing.T) {
	e := NewEngine()
	host := &countingHost{}
	cfg := carousel.DefaultConfig()
	cfg.MoveEase = OutCubic
	cfg.ResizeEase = OutCubic

	r := carousel.New(host, e, cfg)
	p := &carousel.Template{Name: "P"}
	require.NoError(t, r.Initialize([]*carousel.Template{{Name: "A"}, {Name: "B"}, {Name: "C"}}, p))

	r.ScrollLeft()
	assert.True(t, e.Busy())
	assert.Zero(t, host.destroyed)

	e.Advance(cfg.MoveDuration / 2)
	assert.Zero(t, host.destroyed, "evicted item lives until its motion ends")

	e.Advance(cfg.MoveDuration)
	assert.False(t, e.Busy())
	assert.Equal(t, 1, host.destroyed)

	for i, item := range r.Items() {
		assert.Equal(t, r.Positions()[i], item.Visual().Position())
	}
	assert.InDelta(t, cfg.FocusedScale, r.Focused().Visual().Scale(), 1e-9)
}

type countingHost struct {
	destroyed int
}

func (h *countingHost) Materialize(_ *carousel.Template, at carousel.Point) carousel.Visual {
	return &box{pos: at}
}

func (h *countingHost) Destroy(carousel.Visual) {
	h.destroyed++
}
