package chart

import (
	"fmt"
	"math"
)

// Segment is one colored arc of the donut. Start and Sweep are radians
// measured clockwise from twelve o'clock; the segments of a full
// distribution sum to exactly 2π.
type Segment struct {
	Label string
	Count int
	Color string
	Start float64
	Sweep float64
}

// DonutOptions control donut geometry.
type DonutOptions struct {
	Width  int // total columns
	Height int // total rows
}

// DefaultDonutOptions sizes the ring for a typical terminal.
func DefaultDonutOptions() DonutOptions {
	return DonutOptions{Width: 44, Height: 17}
}

// RenderDonut draws the type distribution ring. Terminal cells are
// about twice as tall as wide, so the x distance is halved to keep the
// ring visually round. The total file count sits in the hole.
func RenderDonut(segments []Segment, total int, opts DonutOptions) *Canvas {
	c := NewCanvas(opts.Width, opts.Height)

	cx := float64(opts.Width-1) / 2
	cy := float64(opts.Height-1) / 2

	outer := cy
	if half := cx / 2; half < outer {
		outer = half
	}
	inner := outer * 0.55
	if outer < 2 {
		return c
	}

	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			dx := (float64(x) - cx) / 2
			dy := float64(y) - cy
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < inner || dist > outer {
				continue
			}

			// Angle clockwise from twelve o'clock, normalized to [0, 2π).
			theta := math.Atan2(dx, -dy)
			if theta < 0 {
				theta += 2 * math.Pi
			}

			if seg := segmentAt(segments, theta); seg != nil {
				c.Set(x, y, '█', seg.Color)
			}
		}
	}

	label := fmt.Sprintf("%d", total)
	c.Text(int(cx)-len(label)/2+1, int(cy), label, "")

	return c
}

// segmentAt finds the segment whose arc covers the angle. The last
// segment closes the circle, so an angle of exactly 2π still lands
// inside it.
func segmentAt(segments []Segment, theta float64) *Segment {
	for i := range segments {
		s := &segments[i]
		if theta >= s.Start && theta < s.Start+s.Sweep {
			return s
		}
	}
	if n := len(segments); n > 0 {
		return &segments[n-1]
	}
	return nil
}
