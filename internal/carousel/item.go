package carousel

import "github.com/google/uuid"

// Visual is the on-screen box of an item, owned by the Host that created it.
type Visual interface {
	Position() Point
	SetPosition(p Point)
	Scale() float64
	SetScale(s float64)
}

// Item is a live instance bound to the template it was created from.
// The binding never changes after creation.
type Item struct {
	id        string
	template  *Template
	visual    Visual
	destroyed bool
}

func newItem(t *Template, v Visual) *Item {
	return &Item{
		id:       uuid.NewString(),
		template: t,
		visual:   v,
	}
}

// ID returns the unique identifier of the item.
func (i *Item) ID() string {
	return i.id
}

// Template returns the template the item was materialized from.
func (i *Item) Template() *Template {
	return i.template
}

// Visual returns the item's on-screen box.
func (i *Item) Visual() Visual {
	return i.visual
}

// Destroyed reports whether the item's evict motion has completed.
func (i *Item) Destroyed() bool {
	return i.destroyed
}
