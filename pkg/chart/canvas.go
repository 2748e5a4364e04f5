package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one character of the drawing surface. Color is a hex string
// such as "#8b5cf6"; empty means the terminal default.
type Cell struct {
	Ch    rune
	Color string
}

// Canvas is a fixed-size grid of cells that charts draw onto. Out of
// bounds writes are silently dropped so plotting code never has to
// clamp.
type Canvas struct {
	Width  int
	Height int
	cells  [][]Cell
}

// NewCanvas allocates a blank canvas filled with spaces.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{Ch: ' '}
		}
	}
	return &Canvas{Width: width, Height: height, cells: cells}
}

// Set places a single character.
func (c *Canvas) Set(x, y int, ch rune, color string) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.cells[y][x] = Cell{Ch: ch, Color: color}
}

// At returns the cell at (x, y). Out of bounds reads return a blank.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return Cell{Ch: ' '}
	}
	return c.cells[y][x]
}

// Text writes a string left to right starting at (x, y).
func (c *Canvas) Text(x, y int, s string, color string) {
	for i, ch := range []rune(s) {
		c.Set(x+i, y, ch, color)
	}
}

// HLine draws a horizontal run of the given character.
func (c *Canvas) HLine(x, y, length int, ch rune, color string) {
	for i := 0; i < length; i++ {
		c.Set(x+i, y, ch, color)
	}
}

// Line draws a straight segment between two points using Bresenham's
// algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, ch rune, color string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.Set(x0, y0, ch, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the canvas without any color escapes. Used by tests
// and anywhere plain output is wanted.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			b.WriteRune(c.cells[y][x].Ch)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Render renders the canvas with lipgloss coloring. Consecutive cells
// sharing a color are styled as one run to keep escape overhead down.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		x := 0
		for x < c.Width {
			color := c.cells[y][x].Color
			var run strings.Builder
			for x < c.Width && c.cells[y][x].Color == color {
				run.WriteRune(c.cells[y][x].Ch)
				x++
			}
			if color == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(run.String()))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
