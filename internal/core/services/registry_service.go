package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"pxl/internal/core/domain"
	"pxl/internal/core/ports"
)

// Registry fronts the backend's file list. When the fetch fails and
// fallback is enabled (dashboard only), it hands back deterministic
// synthetic sample data with Degraded set so the UI can label it
// instead of passing mock numbers off as real.
type Registry struct {
	backend  ports.FileService
	fallback bool
}

// NewRegistry creates a registry over the backend port.
func NewRegistry(backend ports.FileService, fallback bool) *Registry {
	return &Registry{backend: backend, fallback: fallback}
}

// FetchResult is one snapshot of the remote registry.
type FetchResult struct {
	Files []domain.FileRecord
	// Degraded marks the snapshot as synthetic sample data served
	// because the backend was unreachable.
	Degraded bool
}

// Fetch pulls a fresh file list. Full refetch is the consistency
// mechanism; there is no incremental sync.
func (r *Registry) Fetch(ctx context.Context) (*FetchResult, error) {
	files, err := r.backend.List(ctx)
	if err != nil {
		if r.fallback {
			return &FetchResult{Files: SampleFiles(time.Now()), Degraded: true}, nil
		}
		return nil, fmt.Errorf("failed to fetch file list: %w", err)
	}
	return &FetchResult{Files: files}, nil
}

// sampleSeed fixes the synthetic data so degraded renders are stable
// across refreshes within a session.
const sampleSeed = 1847

// SampleFiles generates the synthetic registry used in degraded mode:
// a spread of uploads over the trailing 30 days with a realistic mix of
// types and sizes. Deterministic for a fixed now.
func SampleFiles(now time.Time) []domain.FileRecord {
	rng := rand.New(rand.NewSource(sampleSeed))

	types := []string{"image/png", "image/png", "image/jpeg", "image/gif", "image/svg+xml"}
	files := make([]domain.FileRecord, 0, 32)

	for i := 0; i < 32; i++ {
		age := rng.Intn(30)
		hour := rng.Intn(24)
		t := now.AddDate(0, 0, -age)
		t = time.Date(t.Year(), t.Month(), t.Day(), hour, rng.Intn(60), 0, 0, now.Location())

		files = append(files, domain.FileRecord{
			ID:           int64(i + 1),
			Filename:     fmt.Sprintf("sample%02d", i+1),
			OriginalName: fmt.Sprintf("sample-%02d.png", i+1),
			FileType:     types[rng.Intn(len(types))],
			FileSize:     int64(50_000 + rng.Intn(4_000_000)),
			UploadDate:   t.Format(time.RFC3339),
		})
	}
	return files
}
