package services

import (
	"math"
	"time"

	"pxl/internal/core/domain"
)

// QuotaMB is the fixed per-account storage ceiling enforced client-side.
const QuotaMB = 1000

// QuotaBytes is QuotaMB in bytes.
const QuotaBytes = QuotaMB * 1024 * 1024

// Summary holds the dashboard counters derived from one file list.
type Summary struct {
	TotalFiles int
	TotalSize  int64
	TodayCount int
	UsedMB     float64
	FreeMB     float64
	// OverQuota is set when usage exceeds the quota. FreeMB is floored
	// at zero rather than going negative; this flag carries the signal.
	OverQuota bool
}

// Aggregate reduces a file list into the summary counters. Pure in
// (files, now); records with unparseable dates count toward totals but
// never toward TodayCount.
func Aggregate(files []domain.FileRecord, now time.Time) Summary {
	var s Summary
	s.TotalFiles = len(files)

	for i := range files {
		s.TotalSize += files[i].FileSize
		if t, ok := files[i].UploadedAt(); ok && sameDay(t, now) {
			s.TodayCount++
		}
	}

	s.UsedMB = round2(float64(s.TotalSize) / (1024 * 1024))
	free := float64(QuotaMB) - s.UsedMB
	if free < 0 {
		free = 0
		s.OverQuota = true
	}
	s.FreeMB = round2(free)
	return s
}

// UsedPercent returns storage usage as a 0-100 percentage, capped at 100.
func (s Summary) UsedPercent() float64 {
	p := s.UsedMB / QuotaMB * 100
	if p > 100 {
		p = 100
	}
	return p
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sameDay compares two instants on the local calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
