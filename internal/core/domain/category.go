package domain

import "strings"

// Category is one slot of the fixed file-type taxonomy used by the
// type-distribution donut chart.
type Category int

const (
	CategoryPNG Category = iota
	CategoryJPG
	CategoryGIF
	CategorySVG
	CategoryOther
)

// Categories lists the taxonomy in its fixed display order.
var Categories = []Category{CategoryPNG, CategoryJPG, CategoryGIF, CategorySVG, CategoryOther}

// Label returns the display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryPNG:
		return "PNG"
	case CategoryJPG:
		return "JPG"
	case CategoryGIF:
		return "GIF"
	case CategorySVG:
		return "SVG"
	}
	return "Other"
}

// Color returns the fixed display color for the category, as a hex
// string shared by the terminal and HTML renderers.
func (c Category) Color() string {
	switch c {
	case CategoryPNG:
		return "#8b5cf6"
	case CategoryJPG:
		return "#10b981"
	case CategoryGIF:
		return "#f59e0b"
	case CategorySVG:
		return "#3b82f6"
	}
	return "#6b7280"
}

// Classify maps a MIME string onto the taxonomy by case-insensitive
// substring match, in priority order PNG, JPEG/JPG, GIF, SVG. First
// match wins; everything else is Other. Total and deterministic.
func Classify(mimeType string) Category {
	t := strings.ToLower(mimeType)
	switch {
	case strings.Contains(t, "png"):
		return CategoryPNG
	case strings.Contains(t, "jpeg"), strings.Contains(t, "jpg"):
		return CategoryJPG
	case strings.Contains(t, "gif"):
		return CategoryGIF
	case strings.Contains(t, "svg"):
		return CategorySVG
	}
	return CategoryOther
}

// TypeBucket is one non-negative count per taxonomy slot.
type TypeBucket struct {
	Category Category
	Count    int
}
