package services

import (
	"testing"
	"time"

	"pxl/internal/core/domain"
)

func galleryFixture() []domain.FileRecord {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	return []domain.FileRecord{
		{ID: 1, OriginalName: "holiday.png", FileType: "image/png", FileSize: 300,
			UploadDate: base.Format(time.RFC3339)},
		{ID: 2, OriginalName: "avatar.jpg", FileType: "image/jpeg", FileSize: 100,
			UploadDate: base.AddDate(0, 0, 1).Format(time.RFC3339)},
		{ID: 3, OriginalName: "banner.gif", FileType: "image/gif", FileSize: 500,
			UploadDate: base.AddDate(0, 0, 2).Format(time.RFC3339)},
		{ID: 4, OriginalName: "logo.svg", FileType: "image/svg+xml", FileSize: 50,
			UploadDate: base.AddDate(0, 0, 3).Format(time.RFC3339)},
	}
}

func ids(files []domain.FileRecord) []int64 {
	out := make([]int64, len(files))
	for i, f := range files {
		out[i] = f.ID
	}
	return out
}

func TestFilterAndSort(t *testing.T) {
	tests := []struct {
		name    string
		req     GalleryRequest
		wantIDs []int64
	}{
		{"defaults to newest", GalleryRequest{}, []int64{4, 3, 2, 1}},
		{"oldest", GalleryRequest{SortBy: "oldest"}, []int64{1, 2, 3, 4}},
		{"largest", GalleryRequest{SortBy: "largest"}, []int64{3, 1, 2, 4}},
		{"smallest", GalleryRequest{SortBy: "smallest"}, []int64{4, 2, 1, 3}},
		{"name", GalleryRequest{SortBy: "name"}, []int64{2, 3, 1, 4}},
		{"search substring", GalleryRequest{Search: "ava"}, []int64{2}},
		{"search is case-insensitive", GalleryRequest{Search: "AVATAR"}, []int64{2}},
		{"type filter png", GalleryRequest{TypeFilter: "png"}, []int64{1}},
		{"type filter jpg matches jpeg", GalleryRequest{TypeFilter: "jpg"}, []int64{2}},
		{"type filter svg", GalleryRequest{TypeFilter: "svg"}, []int64{4}},
		{"search and filter compose", GalleryRequest{Search: "zzz", TypeFilter: "png"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterAndSort(galleryFixture(), tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			gotIDs := ids(got)
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("got %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Fatalf("got %v, want %v", gotIDs, tt.wantIDs)
				}
			}
		})
	}
}

func TestFilterAndSort_InvalidKnobs(t *testing.T) {
	if _, err := FilterAndSort(nil, GalleryRequest{SortBy: "sideways"}); err == nil {
		t.Error("expected error for invalid sort order")
	}
	if _, err := FilterAndSort(nil, GalleryRequest{TypeFilter: "webp"}); err == nil {
		t.Error("expected error for invalid type filter")
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	in := galleryFixture()
	firstID := in[0].ID

	if _, err := FilterAndSort(in, GalleryRequest{SortBy: "name"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in[0].ID != firstID {
		t.Error("input slice order changed")
	}
}

func TestSampleFiles_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.Local)

	a := SampleFiles(now)
	b := SampleFiles(now)
	if len(a) != len(b) {
		t.Fatal("sample sets differ in length")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("sample data must be deterministic for a fixed now")
		}
	}

	// All samples land inside the 30-day dashboard window.
	buckets := Bin(a, domain.Window30d, now)
	total := 0
	for _, bkt := range buckets {
		total += bkt.Count
	}
	if total != len(a) {
		t.Errorf("%d of %d samples fall inside the 30d window", total, len(a))
	}
}
