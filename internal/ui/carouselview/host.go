package carouselview

import "github.com/llehouerou/carousel/internal/carousel"

// Box is the terminal visual of a carousel item: a card at a world position.
type Box struct {
	template *carousel.Template
	pos      carousel.Point
	scale    float64
	seq      int
}

var _ carousel.Visual = (*Box)(nil)

func (b *Box) Position() carousel.Point     { return b.pos }
func (b *Box) SetPosition(p carousel.Point) { b.pos = p }
func (b *Box) Scale() float64               { return b.scale }
func (b *Box) SetScale(s float64)           { b.scale = s }

// Template returns the template the box displays.
func (b *Box) Template() *carousel.Template {
	return b.template
}

// Host creates boxes for the ring and keeps the live ones in creation order.
type Host struct {
	boxes     []*Box
	seq       int
	destroyed int
}

var _ carousel.Host = (*Host)(nil)

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{}
}

// Materialize implements carousel.Host.
func (h *Host) Materialize(t *carousel.Template, at carousel.Point) carousel.Visual {
	h.seq++
	b := &Box{template: t, pos: at, scale: 1, seq: h.seq}
	h.boxes = append(h.boxes, b)
	return b
}

// Destroy implements carousel.Host. Unknown visuals are ignored.
func (h *Host) Destroy(v carousel.Visual) {
	for i, b := range h.boxes {
		if b == v {
			h.boxes = append(h.boxes[:i], h.boxes[i+1:]...)
			h.destroyed++
			return
		}
	}
}

// Boxes returns the live boxes in creation order.
func (h *Host) Boxes() []*Box {
	return append([]*Box(nil), h.boxes...)
}

// Live returns the number of live boxes.
func (h *Host) Live() int {
	return len(h.boxes)
}

// Destroyed returns how many boxes have been destroyed.
func (h *Host) Destroyed() int {
	return h.destroyed
}
