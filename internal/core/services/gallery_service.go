package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"pxl/internal/core/domain"
)

// GalleryRequest holds the filter and sort knobs for a file listing.
type GalleryRequest struct {
	Search     string // substring of the original filename, case-insensitive
	TypeFilter string // "all", "png", "jpg", "gif", "svg"
	SortBy     string // "newest", "oldest", "largest", "smallest", "name", "type"
}

// SortOrders lists the accepted SortBy values.
var SortOrders = []string{"newest", "oldest", "largest", "smallest", "name", "type"}

// TypeFilters lists the accepted TypeFilter values.
var TypeFilters = []string{"all", "png", "jpg", "gif", "svg"}

// FilterAndSort applies the gallery's search, type filter and sort order
// to a file list. The input slice is not modified.
func FilterAndSort(files []domain.FileRecord, req GalleryRequest) ([]domain.FileRecord, error) {
	if req.TypeFilter == "" {
		req.TypeFilter = "all"
	}
	if req.SortBy == "" {
		req.SortBy = "newest"
	}
	if !contains(TypeFilters, req.TypeFilter) {
		return nil, fmt.Errorf("invalid type filter %q (expected one of %s)",
			req.TypeFilter, strings.Join(TypeFilters, ", "))
	}
	if !contains(SortOrders, req.SortBy) {
		return nil, fmt.Errorf("invalid sort order %q (expected one of %s)",
			req.SortBy, strings.Join(SortOrders, ", "))
	}

	search := strings.ToLower(req.Search)
	out := make([]domain.FileRecord, 0, len(files))
	for _, f := range files {
		if search != "" && !strings.Contains(strings.ToLower(f.OriginalName), search) {
			continue
		}
		if !matchesType(f.FileType, req.TypeFilter) {
			continue
		}
		out = append(out, f)
	}

	sortFiles(out, req.SortBy)
	return out, nil
}

func matchesType(mimeType, filter string) bool {
	if filter == "all" {
		return true
	}
	t := strings.ToLower(mimeType)
	switch filter {
	case "png":
		return strings.Contains(t, "png")
	case "jpg":
		return strings.Contains(t, "jpeg") || strings.Contains(t, "jpg")
	case "gif":
		return strings.Contains(t, "gif")
	case "svg":
		return strings.Contains(t, "svg")
	}
	return false
}

func sortFiles(files []domain.FileRecord, order string) {
	sort.SliceStable(files, func(i, j int) bool {
		a, b := &files[i], &files[j]
		switch order {
		case "oldest":
			return uploadInstant(a).Before(uploadInstant(b))
		case "largest":
			return a.FileSize > b.FileSize
		case "smallest":
			return a.FileSize < b.FileSize
		case "name":
			return strings.ToLower(a.OriginalName) < strings.ToLower(b.OriginalName)
		case "type":
			return strings.ToLower(a.FileType) < strings.ToLower(b.FileType)
		default: // newest
			return uploadInstant(b).Before(uploadInstant(a))
		}
	})
}

// uploadInstant treats unparseable dates as the zero time so they sort
// to the old end of the list instead of erroring.
func uploadInstant(f *domain.FileRecord) time.Time {
	t, ok := f.UploadedAt()
	if !ok {
		return time.Time{}
	}
	return t
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
