package app

import "github.com/llehouerou/carousel/internal/state"

// SaveCarouselState persists the focused template and scroll count.
// A focused placeholder is saved as no template.
func (m *Model) SaveCarouselState() {
	name := ""
	if t := m.Carousel.Focused(); t != nil && !m.Catalog.IsPlaceholder(t) {
		name = t.Name
	}
	m.StateMgr.SaveCarousel(state.CarouselState{
		FocusedTemplate: name,
		ScrollCount:     m.ScrollCount,
	})
}
