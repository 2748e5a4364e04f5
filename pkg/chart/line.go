package chart

import (
	"fmt"
	"math"

	"pxl/internal/core/domain"
)

const (
	lineColor  = "#8b5cf6"
	gridColor  = "#6b7280"
	labelColor = ""
	gridlines  = 5
)

// LineOptions control line chart geometry.
type LineOptions struct {
	Width  int // total columns including margins
	Height int // total rows including margins
	Title  string
}

// DefaultLineOptions sizes the chart for a typical 80-column terminal.
func DefaultLineOptions(window domain.Window) LineOptions {
	return LineOptions{
		Width:  76,
		Height: 20,
		Title:  fmt.Sprintf("Uploads Over Time (%s)", window.DisplayName()),
	}
}

// RenderLine draws the upload-count series onto a fresh canvas. Buckets
// are oldest first; the vertical scale never drops below one so an
// empty period still produces a flat baseline instead of dividing by
// zero.
func RenderLine(buckets []domain.TimeBucket, opts LineOptions) *Canvas {
	c := NewCanvas(opts.Width, opts.Height)

	const (
		marginLeft   = 7
		marginRight  = 2
		marginTop    = 2
		marginBottom = 2
	)

	plotW := opts.Width - marginLeft - marginRight
	plotH := opts.Height - marginTop - marginBottom
	if plotW < 2 || plotH < 2 {
		return c
	}
	top := marginTop
	left := marginLeft

	c.Text(left, 0, opts.Title, lineColor)

	maxValue := 1
	for _, b := range buckets {
		if b.Count > maxValue {
			maxValue = b.Count
		}
	}

	// Horizontal gridlines with right-aligned scale labels. The scale
	// runs from maxValue at the top to zero at the baseline.
	for i := 0; i <= gridlines; i++ {
		y := top + (plotH-1)*i/gridlines
		value := int(math.Round(float64(maxValue) * (1 - float64(i)/gridlines)))
		label := fmt.Sprintf("%*d", marginLeft-2, value)
		c.Text(0, y, label, labelColor)
		c.HLine(left, y, plotW, '┄', gridColor)
	}

	n := len(buckets)
	if n == 0 {
		return c
	}

	pointAt := func(i int) (int, int) {
		x := left
		if n > 1 {
			x = left + int(math.Round(float64(i)*float64(plotW-1)/float64(n-1)))
		} else {
			// A single bucket gets one centered marker.
			x = left + (plotW-1)/2
		}
		frac := float64(buckets[i].Count) / float64(maxValue)
		y := top + int(math.Round(float64(plotH-1)*(1-frac)))
		return x, y
	}

	// Polyline first, then markers on top of it.
	for i := 1; i < n; i++ {
		x0, y0 := pointAt(i - 1)
		x1, y1 := pointAt(i)
		c.Line(x0, y0, x1, y1, '·', lineColor)
	}
	for i := 0; i < n; i++ {
		x, y := pointAt(i)
		c.Set(x, y, '●', lineColor)
	}

	// Bucket labels along the baseline, thinned so they never collide.
	stride := n / 8
	if stride < 1 {
		stride = 1
	}
	labelRow := opts.Height - 1
	for i := 0; i < n; i += stride {
		x, _ := pointAt(i)
		label := buckets[i].Label
		start := x - len(label)/2
		if start < left {
			start = left
		}
		if start+len(label) > opts.Width {
			start = opts.Width - len(label)
		}
		c.Text(start, labelRow, label, labelColor)
	}

	return c
}
