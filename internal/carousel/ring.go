package carousel

import (
	"errors"

	"go.uber.org/zap"
)

var (
	ErrNoTemplates        = errors.New("carousel: no templates")
	ErrNilPlaceholder     = errors.New("carousel: nil placeholder")
	ErrAlreadyInitialized = errors.New("carousel: already initialized")
)

// Direction is the way the ring scrolls.
type Direction int

const (
	// Left evicts the leftmost item and feeds from the right.
	Left Direction = iota
	// Right evicts the rightmost item and feeds from the left.
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Event reports a completed top-level scroll.
type Event struct {
	Direction Direction
	Focused   *Template
	Steps     int  // 1, or 2 when the placeholder was skipped
	Corrected bool // a corrective scroll ran
}

// Option configures a Ring.
type Option func(*Ring)

// WithLogger sets the logger used for scroll diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Ring) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver registers a callback invoked after every top-level scroll.
func WithObserver(fn func(Event)) Option {
	return func(r *Ring) {
		r.observer = fn
	}
}

// Ring is a fixed-size ring of items around a center focus slot.
//
// Scrolling evicts the item at one edge, shifts the others one slot toward it
// and materializes a new item for the evicted template at the opposite edge.
// If the placeholder lands in the center, the ring scrolls once more in the
// same direction. Ring is not safe for concurrent use.
type Ring struct {
	cfg      Config
	host     Host
	animator Animator
	logger   *zap.Logger
	observer func(Event)

	templates   []*Template
	placeholder *Template
	positions   []Point
	items       []*Item
	center      int

	initialized bool
	skipping    bool
	steps       int
}

// New creates an uninitialized ring. Call Initialize before scrolling.
func New(host Host, animator Animator, cfg Config, opts ...Option) *Ring {
	r := &Ring{
		cfg:      cfg,
		host:     host,
		animator: animator,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize fills the ring from templates. An even-length list gets the
// placeholder appended so the ring has a single center slot.
// The templates slice is not modified.
func (r *Ring) Initialize(templates []*Template, placeholder *Template) error {
	if r.initialized {
		return ErrAlreadyInitialized
	}
	if len(templates) == 0 {
		return ErrNoTemplates
	}
	if placeholder == nil {
		return ErrNilPlaceholder
	}

	seq := make([]*Template, len(templates), len(templates)+1)
	copy(seq, templates)
	if len(seq)%2 == 0 {
		seq = append(seq, placeholder)
	}

	r.templates = seq
	r.placeholder = placeholder
	r.center = len(seq) / 2
	r.positions = r.slotPositions(len(seq))

	r.items = make([]*Item, 0, len(seq))
	for i, t := range seq {
		item := r.materialize(t, r.positions[i])
		item.visual.SetScale(r.scaleFor(i))
		r.items = append(r.items, item)
	}
	r.initialized = true

	r.logger.Debug("carousel initialized",
		zap.Int("slots", len(seq)),
		zap.Int("center", r.center),
		zap.Bool("padded", len(seq) != len(templates)))
	return nil
}

func (r *Ring) slotPositions(n int) []Point {
	positions := make([]Point, n)
	for i := range n {
		positions[i] = Point{
			X: r.cfg.Anchor.X + float64(i-r.center)*r.cfg.Spacing,
			Y: r.cfg.Anchor.Y,
		}
	}
	return positions
}

func (r *Ring) scaleFor(slot int) float64 {
	if slot == r.center {
		return r.cfg.FocusedScale
	}
	return r.cfg.SideScale
}

func (r *Ring) materialize(t *Template, at Point) *Item {
	return newItem(t, r.host.Materialize(t, at))
}

// Scroll scrolls the ring one step in the given direction.
func (r *Ring) Scroll(d Direction) {
	if d == Right {
		r.ScrollRight()
		return
	}
	r.ScrollLeft()
}

// ScrollLeft evicts the leftmost item and feeds its template in from the right.
// It is a no-op on an uninitialized ring.
func (r *Ring) ScrollLeft() {
	if len(r.items) == 0 {
		return
	}
	top := r.begin()

	n := len(r.items)
	leaving := r.items[0]
	r.evict(leaving, r.cfg.OffScreenLeftX)

	for i := 1; i < n; i++ {
		r.shift(r.items[i], i-1)
	}
	r.items = r.items[1:]

	last := n - 1
	item := r.spawn(leaving.template, r.cfg.OffScreenRightX, last)
	r.items = append(r.items, item)

	r.checkCenter(Left)
	r.end(top, Left)
}

// ScrollRight evicts the rightmost item and feeds its template in from the left.
// It is a no-op on an uninitialized ring.
func (r *Ring) ScrollRight() {
	if len(r.items) == 0 {
		return
	}
	top := r.begin()

	n := len(r.items)
	leaving := r.items[n-1]
	r.evict(leaving, r.cfg.OffScreenRightX)

	for i := n - 2; i >= 0; i-- {
		r.shift(r.items[i], i+1)
	}
	r.items = r.items[:n-1]

	item := r.spawn(leaving.template, r.cfg.OffScreenLeftX, 0)
	items := make([]*Item, 0, n)
	items = append(items, item)
	r.items = append(items, r.items...)

	r.checkCenter(Right)
	r.end(top, Right)
}

// begin marks the start of a scroll and reports whether it is user-triggered.
func (r *Ring) begin() bool {
	top := !r.skipping
	if top {
		r.steps = 0
	}
	r.steps++
	return top
}

func (r *Ring) end(top bool, d Direction) {
	if !top || r.observer == nil {
		return
	}
	r.observer(Event{
		Direction: d,
		Focused:   r.focusedTemplate(),
		Steps:     r.steps,
		Corrected: r.steps > 1,
	})
}

func (r *Ring) evict(item *Item, offX float64) {
	v := item.visual
	target := Point{X: offX, Y: v.Position().Y}
	r.animator.MoveOut(v, target, r.cfg.moveMotion(), func() {
		if item.destroyed {
			return
		}
		item.destroyed = true
		r.host.Destroy(v)
	})
	r.logger.Debug("carousel evict",
		zap.String("item", item.id),
		zap.String("template", item.template.Name))
}

func (r *Ring) shift(item *Item, slot int) {
	r.animator.Move(item.visual, r.positions[slot], r.cfg.moveMotion())
	r.animator.Scale(item.visual, r.scaleFor(slot), r.cfg.resizeMotion())
}

func (r *Ring) spawn(t *Template, offX float64, slot int) *Item {
	target := r.positions[slot]
	item := r.materialize(t, Point{X: offX, Y: target.Y})
	item.visual.SetScale(r.cfg.SideScale)
	r.animator.Move(item.visual, target, r.cfg.moveMotion())
	r.animator.Scale(item.visual, r.cfg.SideScale, r.cfg.resizeMotion())
	return item
}

// checkCenter scrolls once more in direction d when the placeholder sits in
// the center. The corrective scroll itself is never corrected.
func (r *Ring) checkCenter(d Direction) {
	if r.skipping {
		return
	}
	if len(r.items) <= r.center {
		return
	}
	if r.items[r.center].template != r.placeholder {
		return
	}

	r.logger.Debug("carousel skipping placeholder", zap.Stringer("direction", d))
	r.skipping = true
	r.Scroll(d)
	r.skipping = false
}

func (r *Ring) focusedTemplate() *Template {
	if f := r.Focused(); f != nil {
		return f.template
	}
	return nil
}
