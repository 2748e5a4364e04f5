package services

import (
	"testing"
	"time"

	"pxl/internal/core/domain"
)

func TestBin_BucketCounts(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		window domain.Window
		want   int
	}{
		{domain.Window24h, 24},
		{domain.Window7d, 7},
		{domain.Window14d, 14},
		{domain.Window30d, 30},
	}

	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			buckets := Bin(nil, tt.window, now)
			if len(buckets) != tt.want {
				t.Errorf("got %d buckets, want %d", len(buckets), tt.want)
			}
			for _, b := range buckets {
				if b.Count != 0 {
					t.Errorf("bucket %q count = %d, want 0 for empty input", b.Label, b.Count)
				}
			}
		})
	}
}

func TestBin_DailyCountsSumToWindowFiles(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)

	files := []domain.FileRecord{
		fileAt(now, 1),                    // today
		fileAt(now.AddDate(0, 0, -1), 1),  // yesterday
		fileAt(now.AddDate(0, 0, -6), 1),  // inside 7d
		fileAt(now.AddDate(0, 0, -7), 1),  // outside 7d, inside 14d
		fileAt(now.AddDate(0, 0, -29), 1), // inside 30d only
		fileAt(now.AddDate(0, 0, -45), 1), // outside every window
		{UploadDate: "garbage", FileSize: 1},
	}

	sum := func(buckets []domain.TimeBucket) int {
		n := 0
		for _, b := range buckets {
			n += b.Count
		}
		return n
	}

	if got := sum(Bin(files, domain.Window7d, now)); got != 3 {
		t.Errorf("7d sum = %d, want 3", got)
	}
	if got := sum(Bin(files, domain.Window14d, now)); got != 4 {
		t.Errorf("14d sum = %d, want 4", got)
	}
	if got := sum(Bin(files, domain.Window30d, now)); got != 5 {
		t.Errorf("30d sum = %d, want 5", got)
	}
}

func TestBin_DailyOrderOldestFirst(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	files := []domain.FileRecord{fileAt(now, 1)}

	buckets := Bin(files, domain.Window7d, now)
	if buckets[len(buckets)-1].Count != 1 {
		t.Error("today's upload should land in the newest (last) bucket")
	}
	if buckets[0].Count != 0 {
		t.Error("oldest bucket should be empty")
	}
	if buckets[len(buckets)-1].Label != now.Format("Mon") {
		t.Errorf("newest bucket label = %q, want %q", buckets[len(buckets)-1].Label, now.Format("Mon"))
	}
}

func TestBin_DailyLabels(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)

	// N<=7 uses short weekday names.
	for _, b := range Bin(nil, domain.Window7d, now) {
		if len(b.Label) != 3 {
			t.Errorf("7d label %q should be a short weekday name", b.Label)
		}
	}

	// N>7 uses short month + day.
	buckets := Bin(nil, domain.Window30d, now)
	if buckets[len(buckets)-1].Label != "Mar 15" {
		t.Errorf("30d newest label = %q, want %q", buckets[len(buckets)-1].Label, "Mar 15")
	}
}

func TestBin_HourlyLabelsEndAtCurrentHour(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)

	buckets := Bin(nil, domain.Window24h, now)
	if len(buckets) != 24 {
		t.Fatalf("got %d buckets, want 24", len(buckets))
	}
	if buckets[23].Label != "14:00" {
		t.Errorf("newest bucket label = %q, want 14:00", buckets[23].Label)
	}
	if buckets[0].Label != "15:00" {
		t.Errorf("oldest bucket label = %q, want 15:00 (yesterday's hour)", buckets[0].Label)
	}
}

func TestBin_HourlyCountsOnlyToday(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)

	files := []domain.FileRecord{
		fileAt(time.Date(2026, 3, 15, 14, 5, 0, 0, time.Local), 1),  // today 14:xx
		fileAt(time.Date(2026, 3, 15, 9, 45, 0, 0, time.Local), 1),  // today 09:xx
		fileAt(time.Date(2026, 3, 14, 14, 5, 0, 0, time.Local), 1),  // yesterday, same hour: excluded
		fileAt(time.Date(2026, 3, 14, 20, 0, 0, 0, time.Local), 1),  // yesterday evening: excluded
	}

	buckets := Bin(files, domain.Window24h, now)

	byLabel := map[string]int{}
	total := 0
	for _, b := range buckets {
		byLabel[b.Label] += b.Count
		total += b.Count
	}

	if byLabel["14:00"] != 1 {
		t.Errorf("14:00 count = %d, want 1 (yesterday's 14:00 excluded)", byLabel["14:00"])
	}
	if byLabel["09:00"] != 1 {
		t.Errorf("09:00 count = %d, want 1", byLabel["09:00"])
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
}

func TestBin_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	files := []domain.FileRecord{
		fileAt(now, 1),
		fileAt(now.AddDate(0, 0, -3), 1),
	}

	first := Bin(files, domain.Window7d, now)
	for i := 0; i < 5; i++ {
		again := Bin(files, domain.Window7d, now)
		for j := range first {
			if first[j] != again[j] {
				t.Fatal("Bin is not deterministic for a fixed now")
			}
		}
	}
}

func TestMaxCount_FloorsAtOne(t *testing.T) {
	if got := MaxCount(nil); got != 1 {
		t.Errorf("MaxCount(nil) = %d, want 1", got)
	}
	if got := MaxCount([]domain.TimeBucket{{Count: 0}, {Count: 0}}); got != 1 {
		t.Errorf("MaxCount(zeros) = %d, want 1", got)
	}
	if got := MaxCount([]domain.TimeBucket{{Count: 2}, {Count: 9}}); got != 9 {
		t.Errorf("MaxCount = %d, want 9", got)
	}
}
