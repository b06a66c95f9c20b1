// Package carouselview draws a carousel ring as a row of cards in the terminal
// and drives its animations frame by frame.
package carouselview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/tween"
	"github.com/llehouerou/carousel/internal/ui"
)

// Options controls how the ring is drawn and animated.
type Options struct {
	FPS            int
	UnitsPerColumn float64 // world units per terminal column
	CardWidth      int     // card size at scale 1
	CardHeight     int
	Logger         *zap.Logger
	Clock          func() time.Time // defaults to time.Now
}

// Model is the carousel component.
type Model struct {
	ui.Base
	ring   *carousel.Ring
	host   *Host
	engine *tween.Engine
	anchor carousel.Point
	opts   Options
	logger *zap.Logger

	events    []carousel.Event
	ticking   bool
	lastFrame time.Time
}

// New creates an uninitialized carousel component.
func New(cfg carousel.Config, opts Options) *Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.UnitsPerColumn <= 0 {
		opts.UnitsPerColumn = 10
	}
	if opts.CardWidth < ui.MinCardSize {
		opts.CardWidth = 9
	}
	if opts.CardHeight < ui.MinCardSize {
		opts.CardHeight = 4
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		host:   NewHost(),
		engine: tween.NewEngine(),
		anchor: cfg.Anchor,
		opts:   opts,
		logger: logger,
	}
	m.ring = carousel.New(m.host, m.engine, cfg,
		carousel.WithLogger(logger),
		carousel.WithObserver(m.observe),
	)
	return m
}

// Initialize fills the ring. See carousel.Ring.Initialize.
func (m *Model) Initialize(templates []*carousel.Template, placeholder *carousel.Template) error {
	return m.ring.Initialize(templates, placeholder)
}

// Ring returns the underlying ring.
func (m *Model) Ring() *carousel.Ring {
	return m.ring
}

// Host returns the box host.
func (m *Model) Host() *Host {
	return m.host
}

// Engine returns the animation engine.
func (m *Model) Engine() *tween.Engine {
	return m.engine
}

func (m *Model) observe(e carousel.Event) {
	m.events = append(m.events, e)
}

// ScrollLeft scrolls the ring left and returns the focus change and frame commands.
func (m *Model) ScrollLeft() tea.Cmd {
	m.ring.ScrollLeft()
	return m.afterScroll()
}

// ScrollRight scrolls the ring right and returns the focus change and frame commands.
func (m *Model) ScrollRight() tea.Cmd {
	m.ring.ScrollRight()
	return m.afterScroll()
}

func (m *Model) afterScroll() tea.Cmd {
	if len(m.events) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.events)+1)
	for _, e := range m.events {
		a := FocusChanged{
			Template:  e.Focused,
			Index:     m.indexOf(e.Focused),
			Direction: e.Direction,
			Steps:     e.Steps,
		}
		cmds = append(cmds, func() tea.Msg { return ActionMsg(a) })
	}
	m.events = m.events[:0]
	cmds = append(cmds, m.startFrames())
	return tea.Batch(cmds...)
}

// Restore scrolls left until t is focused, at most once around the ring,
// and snaps all motion to its end. It reports whether t was reached.
// No FocusChanged actions are emitted.
func (m *Model) Restore(t *carousel.Template) bool {
	defer func() {
		m.engine.Finish()
		m.events = m.events[:0]
	}()
	for range m.ring.Len() {
		if m.Focused() == t {
			return true
		}
		m.ring.ScrollLeft()
	}
	return m.Focused() == t
}

// Snap finishes all running motion.
func (m *Model) Snap() {
	m.engine.Finish()
}

// Focused returns the template in the center slot, or nil before initialization.
func (m *Model) Focused() *carousel.Template {
	if item := m.ring.Focused(); item != nil {
		return item.Template()
	}
	return nil
}

// FocusIndex returns the focused template's position in the sequence and
// the sequence length. The index is -1 before initialization.
func (m *Model) FocusIndex() (index, total int) {
	return m.indexOf(m.Focused()), m.ring.Len()
}

func (m *Model) indexOf(t *carousel.Template) int {
	if t == nil {
		return -1
	}
	for i, tt := range m.ring.Templates() {
		if tt == t {
			return i
		}
	}
	return -1
}

// Animating reports whether any motion is running.
func (m *Model) Animating() bool {
	return m.engine.Busy()
}

// Update handles frame ticks.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(FrameMsg); ok {
		return m, m.handleFrame(msg)
	}
	return m, nil
}

func (m *Model) startFrames() tea.Cmd {
	if m.ticking || !m.engine.Busy() {
		return nil
	}
	m.ticking = true
	m.lastFrame = m.opts.Clock()
	return m.frameCmd()
}

func (m *Model) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

func (m *Model) handleFrame(msg FrameMsg) tea.Cmd {
	if !m.ticking {
		return nil
	}
	dt := max(msg.At.Sub(m.lastFrame), 0)
	m.lastFrame = msg.At
	m.engine.Advance(dt)

	if m.engine.Busy() {
		return m.frameCmd()
	}
	m.ticking = false
	m.logger.Debug("carousel animation settled", zap.Int("live", m.host.Live()))
	return nil
}
