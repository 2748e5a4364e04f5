package services

import (
	"math"
	"testing"

	"pxl/internal/core/domain"
)

func filesOfTypes(types ...string) []domain.FileRecord {
	out := make([]domain.FileRecord, len(types))
	for i, t := range types {
		out[i] = domain.FileRecord{FileType: t}
	}
	return out
}

func TestDistribution_TotalAndExclusive(t *testing.T) {
	files := filesOfTypes(
		"image/png", "IMAGE/PNG", "image/jpeg", "image/gif",
		"image/svg+xml", "application/pdf", "")

	buckets := Distribution(files)

	if len(buckets) != 5 {
		t.Fatalf("got %d buckets, want 5 (fixed taxonomy)", len(buckets))
	}

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != len(files) {
		t.Errorf("bucket counts sum to %d, want %d (every file in exactly one bucket)", total, len(files))
	}

	want := map[domain.Category]int{
		domain.CategoryPNG:   2,
		domain.CategoryJPG:   1,
		domain.CategoryGIF:   1,
		domain.CategorySVG:   1,
		domain.CategoryOther: 2,
	}
	for _, b := range buckets {
		if b.Count != want[b.Category] {
			t.Errorf("%s count = %d, want %d", b.Category.Label(), b.Count, want[b.Category])
		}
	}
}

func TestSlices_AnglesSumToFullCircle(t *testing.T) {
	buckets := Distribution(filesOfTypes(
		"image/png", "image/png", "image/jpeg", "image/gif", "video/mp4"))

	slices := Slices(buckets)

	var sum float64
	for _, s := range slices {
		if s.Sweep <= 0 {
			t.Errorf("%s sweep = %v, want > 0", s.Category.Label(), s.Sweep)
		}
		sum += s.Sweep
	}
	if sum != 2*math.Pi {
		t.Errorf("sweeps sum to %v, want exactly 2π", sum)
	}
}

func TestSlices_StartAtTwelveOClockClockwise(t *testing.T) {
	buckets := Distribution(filesOfTypes("image/png", "image/jpeg"))
	slices := Slices(buckets)

	if len(slices) != 2 {
		t.Fatalf("got %d slices, want 2", len(slices))
	}
	if slices[0].Start != 0 {
		t.Errorf("first slice starts at %v, want 0 (12 o'clock)", slices[0].Start)
	}
	if slices[1].Start != slices[0].Sweep {
		t.Error("slices should be contiguous, sweeping clockwise")
	}
}

func TestSlices_ZeroBucketsSkipped(t *testing.T) {
	buckets := Distribution(filesOfTypes("image/png", "image/png"))

	slices := Slices(buckets)
	if len(slices) != 1 {
		t.Fatalf("got %d slices, want 1 (zero-count buckets produce no slice)", len(slices))
	}
	if slices[0].Category != domain.CategoryPNG {
		t.Errorf("slice category = %s, want PNG", slices[0].Category.Label())
	}
	if slices[0].Sweep != 2*math.Pi {
		t.Errorf("single slice sweep = %v, want 2π", slices[0].Sweep)
	}
}

func TestSlices_EmptyInput(t *testing.T) {
	if got := Slices(Distribution(nil)); got != nil {
		t.Errorf("Slices of empty distribution = %v, want nil", got)
	}
}

func TestLegend_NonZeroOnlyInTaxonomyOrder(t *testing.T) {
	buckets := Distribution(filesOfTypes("image/svg+xml", "image/png", "image/svg+xml"))

	legend := Legend(buckets)
	if len(legend) != 2 {
		t.Fatalf("got %d legend entries, want 2", len(legend))
	}
	if legend[0].Label != "PNG" || legend[1].Label != "SVG" {
		t.Errorf("legend order = [%s %s], want taxonomy order [PNG SVG]",
			legend[0].Label, legend[1].Label)
	}
	if legend[1].Count != 2 {
		t.Errorf("SVG legend count = %d, want 2", legend[1].Count)
	}
	if legend[0].Color != domain.CategoryPNG.Color() {
		t.Error("legend carries the bucket's fixed display color")
	}
}
