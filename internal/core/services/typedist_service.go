package services

import (
	"math"

	"pxl/internal/core/domain"
)

// Distribution counts files per taxonomy slot, in fixed taxonomy order.
// Every file maps to exactly one bucket.
func Distribution(files []domain.FileRecord) []domain.TypeBucket {
	counts := make(map[domain.Category]int, len(domain.Categories))
	for i := range files {
		counts[domain.Classify(files[i].FileType)]++
	}

	out := make([]domain.TypeBucket, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		out = append(out, domain.TypeBucket{Category: c, Count: counts[c]})
	}
	return out
}

// Slice is one angular segment of the donut chart. Angles are measured
// in radians from the 12-o'clock position, sweeping clockwise.
type Slice struct {
	Category domain.Category
	Count    int
	Start    float64
	Sweep    float64
}

// Slices converts a distribution into donut segments. Zero-count
// buckets produce no slice; when at least one file exists the sweeps
// sum to exactly 2π.
func Slices(buckets []domain.TypeBucket) []Slice {
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total == 0 {
		return nil
	}

	out := make([]Slice, 0, len(buckets))
	angle := 0.0
	remaining := total
	for _, b := range buckets {
		if b.Count == 0 {
			continue
		}
		sweep := 2 * math.Pi * float64(b.Count) / float64(total)
		if b.Count == remaining {
			// Last non-empty slice closes the ring exactly, absorbing
			// floating point drift from the earlier divisions.
			sweep = 2*math.Pi - angle
		}
		out = append(out, Slice{
			Category: b.Category,
			Count:    b.Count,
			Start:    angle,
			Sweep:    sweep,
		})
		angle += sweep
		remaining -= b.Count
	}
	return out
}

// LegendEntry is one line of the donut chart legend.
type LegendEntry struct {
	Color string
	Label string
	Count int
}

// Legend builds legend entries for every non-zero bucket, preserving
// taxonomy order.
func Legend(buckets []domain.TypeBucket) []LegendEntry {
	out := make([]LegendEntry, 0, len(buckets))
	for _, b := range buckets {
		if b.Count == 0 {
			continue
		}
		out = append(out, LegendEntry{
			Color: b.Category.Color(),
			Label: b.Category.Label(),
			Count: b.Count,
		})
	}
	return out
}
