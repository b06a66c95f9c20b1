package carouselview

import (
	"math"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// card is a box resolved to terminal cells.
type card struct {
	box          *Box
	x, y, w, h   int
	role         styles.CardRole
	name         string
	art          []string
	contentStyle lipgloss.Style
}

// View renders the live boxes. Smaller cards are drawn first so the focused
// card covers its neighbours.
func (m *Model) View() string {
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	canvas := render.NewCanvas(width, height)
	for _, c := range m.layout() {
		m.drawCard(canvas, c)
	}
	return canvas.String()
}

func (m *Model) layout() []card {
	boxes := m.host.Boxes()
	slices.SortStableFunc(boxes, func(a, b *Box) int {
		switch {
		case a.scale < b.scale:
			return -1
		case a.scale > b.scale:
			return 1
		}
		return a.seq - b.seq
	})

	var focused carousel.Visual
	if item := m.ring.Focused(); item != nil {
		focused = item.Visual()
	}

	cards := make([]card, 0, len(boxes))
	for _, b := range boxes {
		c := m.place(b)
		switch {
		case b.template == m.ring.Placeholder():
			c.role = styles.CardPlaceholder
		case b == focused:
			c.role = styles.CardFocused
		default:
			c.role = styles.CardSide
		}
		c.contentStyle = styles.CardContent(c.role, b.template.Color)
		cards = append(cards, c)
	}
	return cards
}

// place maps a box from world space to cells: the anchor sits in the middle
// of the view and one column covers UnitsPerColumn world units.
func (m *Model) place(b *Box) card {
	width, height := m.Size()
	col := width/2 + round((b.pos.X-m.anchor.X)/m.opts.UnitsPerColumn)
	row := height/2 + round((b.pos.Y-m.anchor.Y)/m.opts.UnitsPerColumn)

	w := max(round(float64(m.opts.CardWidth)*b.scale), ui.MinCardSize)
	h := max(round(float64(m.opts.CardHeight)*b.scale), ui.MinCardSize)

	return card{
		box:  b,
		x:    col - w/2,
		y:    row - h/2,
		w:    w,
		h:    h,
		name: b.template.Name,
		art:  b.template.Art,
	}
}

func (m *Model) drawCard(canvas *render.Canvas, c card) {
	canvas.Box(c.x, c.y, c.w, c.h, styles.CardBorder(c.role))

	inner := c.w - 2
	rows := c.h - 2
	if inner <= 0 || rows <= 0 {
		return
	}

	nameStyle := c.contentStyle
	if c.role == styles.CardFocused {
		nameStyle = styles.T().S().Focused
	}
	canvas.Text(c.x+1, c.y+1, render.Center(c.name, inner), nameStyle)

	for i, line := range c.art {
		if i+1 >= rows {
			break
		}
		canvas.Text(c.x+1, c.y+2+i, render.Center(line, inner), c.contentStyle)
	}
}

func round(f float64) int {
	return int(math.Round(f))
}
