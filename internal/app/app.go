// Package app is the root model of the carousel terminal UI.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/carousel/internal/catalog"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/ui/carouselview"
)

// Title is shown in the header.
const Title = "carousel"

var errNotInCatalog = errors.New("not in catalog")

// Options are the dependencies of the root model.
type Options struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	StateMgr state.Interface
	Logger   *zap.Logger
	Clock    func() time.Time // animation clock, defaults to time.Now
}

// Model is the root application model.
type Model struct {
	Carousel     *carouselview.Model
	Catalog      *catalog.Catalog
	Keys         *keymap.Resolver
	Help         help.Model
	StateMgr     state.Interface
	ShowFullHelp bool
	ScrollCount  int64
	ErrorMsg     string
	Width        int
	Height       int

	logger *zap.Logger
}

// New builds the carousel from the catalog and restores the saved focus.
func New(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ringCfg, err := opts.Config.GetCarouselConfig().Ring()
	if err != nil {
		return Model{}, fmt.Errorf("carousel config: %w", err)
	}
	view := opts.Config.GetViewConfig()

	cv := carouselview.New(ringCfg, carouselview.Options{
		FPS:            view.FPS,
		UnitsPerColumn: view.UnitsPerColumn,
		CardWidth:      view.CardWidth,
		CardHeight:     view.CardHeight,
		Logger:         logger.Named("carousel"),
		Clock:          opts.Clock,
	})
	if err := cv.Initialize(opts.Catalog.Templates, opts.Catalog.Placeholder); err != nil {
		return Model{}, err
	}

	m := Model{
		Carousel: cv,
		Catalog:  opts.Catalog,
		Keys:     keymap.NewResolver(keymap.All),
		Help:     help.New(),
		StateMgr: opts.StateMgr,
		logger:   logger,
	}
	m.restore()
	return m, nil
}

// restore brings the saved template back into focus. Failures are shown in
// the status bar and do not prevent startup.
func (m *Model) restore() {
	saved, err := m.StateMgr.GetCarousel()
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpStateLoad, err)
		m.logger.Warn("load carousel state", zap.Error(err))
		return
	}
	if saved == nil {
		return
	}

	m.ScrollCount = saved.ScrollCount
	if saved.FocusedTemplate == "" {
		return
	}

	t := m.Catalog.Find(saved.FocusedTemplate)
	if t == nil || !m.Carousel.Restore(t) {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpStateRestore, saved.FocusedTemplate, errNotInCatalog)
		m.logger.Info("saved template not restored", zap.String("template", saved.FocusedTemplate))
		return
	}
	m.logger.Debug("restored focus", zap.String("template", t.Name))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
