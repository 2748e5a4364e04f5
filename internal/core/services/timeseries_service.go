package services

import (
	"time"

	"pxl/internal/core/domain"
)

// Bin buckets the file list into the ordered time series for one chart
// window, oldest bucket first and the newest ending at now. Pure in
// (files, window, now) so tests can pin the clock.
//
// The 24h window produces 24 hourly buckets walking back from the
// current hour inclusive; a file lands in a bucket only when its local
// hour matches the bucket's hour AND it was uploaded today. Day windows
// produce one bucket per calendar day, matched on the local date with
// the time of day ignored.
func Bin(files []domain.FileRecord, window domain.Window, now time.Time) []domain.TimeBucket {
	if window.Hourly() {
		return binHourly(files, now)
	}
	return binDaily(files, window.Buckets(), now)
}

func binHourly(files []domain.FileRecord, now time.Time) []domain.TimeBucket {
	buckets := make([]domain.TimeBucket, 0, 24)
	base := now.Truncate(time.Hour)

	for i := 23; i >= 0; i-- {
		bt := base.Add(-time.Duration(i) * time.Hour)
		bucket := domain.TimeBucket{Label: bt.Format("15:00")}

		for j := range files {
			t, ok := files[j].UploadedAt()
			if !ok {
				continue
			}
			if sameDay(t, now) && t.Hour() == bt.Hour() {
				bucket.Count++
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

func binDaily(files []domain.FileRecord, days int, now time.Time) []domain.TimeBucket {
	buckets := make([]domain.TimeBucket, 0, days)

	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		bucket := domain.TimeBucket{Label: dayLabel(day, days)}

		for j := range files {
			t, ok := files[j].UploadedAt()
			if !ok {
				continue
			}
			if sameDay(t, day) {
				bucket.Count++
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// dayLabel picks the label format: short weekday names fit a week,
// wider windows switch to short month + day.
func dayLabel(day time.Time, days int) string {
	if days <= 7 {
		return day.Format("Mon")
	}
	return day.Format("Jan 2")
}

// MaxCount returns the largest bucket count with a floor of one, so the
// chart's vertical scale never divides by zero on an empty series.
func MaxCount(buckets []domain.TimeBucket) int {
	max := 1
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
	}
	return max
}
