// internal/state/mock.go
package state

import (
	"database/sql"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	carousel *CarouselState
	history  []FocusEntry
	saves    int
	closed   bool
	loadErr  error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveCarousel(state CarouselState) {
	m.saves++
	m.carousel = &state
	m.history = append([]FocusEntry{{
		Template:    state.FocusedTemplate,
		ScrollCount: state.ScrollCount,
		At:          time.Now(),
	}}, m.history...)
}

func (m *Mock) GetCarousel() (*CarouselState, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.carousel, nil
}

func (m *Mock) RecentFocus(limit int) ([]FocusEntry, error) {
	if limit > 0 && len(m.history) > limit {
		return m.history[:limit], nil
	}
	return m.history, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetCarousel(state *CarouselState) { m.carousel = state }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
