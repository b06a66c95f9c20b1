package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type cell struct {
	text  string
	style *lipgloss.Style
	wide  bool // second column of a double-width cluster
}

// Canvas is a fixed grid of terminal cells. Later writes cover earlier ones
// and anything outside the grid is clipped.
type Canvas struct {
	width, height int
	cells         []cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	for i := range c.cells {
		c.cells[i].text = " "
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Text writes s starting at column x of row y.
func (c *Canvas) Text(x, y int, s string, style lipgloss.Style) {
	if y < 0 || y >= c.height {
		return
	}
	st := &style
	gr := uniseg.NewGraphemes(Sanitize(s))
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		c.put(x, y, cluster, w, st)
		x += w
		if x >= c.width {
			return
		}
	}
}

// Fill paints a rectangle with spaces in the given style.
func (c *Canvas) Fill(x, y, w, h int, style lipgloss.Style) {
	st := &style
	for row := y; row < y+h; row++ {
		if row < 0 || row >= c.height {
			continue
		}
		for col := x; col < x+w; col++ {
			c.put(col, row, " ", 1, st)
		}
	}
}

// Box draws a rounded border around a w×h rectangle and clears its inside.
// Boxes smaller than 2×2 are not drawn.
func (c *Canvas) Box(x, y, w, h int, style lipgloss.Style) {
	if w < 2 || h < 2 {
		return
	}
	b := lipgloss.RoundedBorder()
	c.Fill(x+1, y+1, w-2, h-2, lipgloss.NewStyle())
	c.Text(x, y, b.TopLeft+strings.Repeat(b.Top, w-2)+b.TopRight, style)
	for row := y + 1; row < y+h-1; row++ {
		c.Text(x, row, b.Left, style)
		c.Text(x+w-1, row, b.Right, style)
	}
	c.Text(x, y+h-1, b.BottomLeft+strings.Repeat(b.Bottom, w-2)+b.BottomRight, style)
}

func (c *Canvas) put(x, y int, text string, w int, style *lipgloss.Style) {
	if x < 0 || x+w > c.width {
		// Clip clusters that straddle an edge.
		if w == 1 || x >= c.width || x+w <= 0 {
			return
		}
		for col := max(x, 0); col < min(x+w, c.width); col++ {
			c.put(col, y, " ", 1, style)
		}
		return
	}

	row := y * c.width
	// Break any wide cluster this write cuts in half.
	if first := &c.cells[row+x]; first.wide && x > 0 {
		c.cells[row+x-1] = cell{text: " ", style: c.cells[row+x-1].style}
	}
	if end := x + w; end < c.width && c.cells[row+end].wide {
		c.cells[row+end] = cell{text: " ", style: c.cells[row+end].style}
	}

	c.cells[row+x] = cell{text: text, style: style}
	for i := 1; i < w; i++ {
		c.cells[row+x+i] = cell{style: style, wide: true}
	}
}

// String renders the canvas, one line per row, styling runs of cells
// written by the same call together.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	var b, run strings.Builder
	for y := range c.height {
		b.Reset()
		var current *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(current.Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range c.cells[y*c.width : (y+1)*c.width] {
			if cl.wide {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteString(cl.text)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
