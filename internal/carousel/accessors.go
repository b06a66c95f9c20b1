package carousel

// Initialized reports whether Initialize has succeeded.
func (r *Ring) Initialized() bool {
	return r.initialized
}

// Len returns the number of slots, or 0 before initialization.
func (r *Ring) Len() int {
	return len(r.templates)
}

// CenterIndex returns the index of the focus slot.
func (r *Ring) CenterIndex() int {
	return r.center
}

// Placeholder returns the template that is skipped in the center slot.
func (r *Ring) Placeholder() *Template {
	return r.placeholder
}

// Templates returns the normalized template sequence fixed at initialization.
func (r *Ring) Templates() []*Template {
	return append([]*Template(nil), r.templates...)
}

// Positions returns the slot positions, left to right.
func (r *Ring) Positions() []Point {
	return append([]Point(nil), r.positions...)
}

// Items returns the displayed items, left to right.
func (r *Ring) Items() []*Item {
	return append([]*Item(nil), r.items...)
}

// Order returns the templates bound to the displayed items, left to right.
func (r *Ring) Order() []*Template {
	order := make([]*Template, len(r.items))
	for i, item := range r.items {
		order[i] = item.template
	}
	return order
}

// Focused returns the item in the center slot, or nil before initialization.
func (r *Ring) Focused() *Item {
	if len(r.items) <= r.center {
		return nil
	}
	return r.items[r.center]
}
