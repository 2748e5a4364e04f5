package domain

import (
	"testing"
	"time"
)

func TestUploadedAt(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		ok      bool
		wantDay int
	}{
		{"RFC3339", "2026-03-15T10:30:00Z", true, 15},
		{"RFC3339 with nanos", "2026-03-15T10:30:00.123456Z", true, 15},
		{"naive ISO", "2026-03-15T10:30:00", true, 15},
		{"space separated", "2026-03-15 10:30:00", true, 15},
		{"date only", "2026-03-15", true, 15},
		{"empty", "", false, 0},
		{"garbage", "not-a-date", false, 0},
		{"partial", "2026-13-99", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FileRecord{UploadDate: tt.date}
			got, ok := f.UploadedAt()
			if ok != tt.ok {
				t.Fatalf("UploadedAt() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Day() != tt.wantDay {
				t.Errorf("UploadedAt() day = %d, want %d", got.Day(), tt.wantDay)
			}
		})
	}
}

func TestUploadedAt_LocalZone(t *testing.T) {
	f := FileRecord{UploadDate: "2026-03-15T23:30:00"}
	got, ok := f.UploadedAt()
	if !ok {
		t.Fatal("expected parseable date")
	}
	if got.Location() != time.Local {
		t.Errorf("expected local timezone, got %v", got.Location())
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		mime string
		want Category
	}{
		{"image/png", CategoryPNG},
		{"IMAGE/PNG", CategoryPNG},
		{"image/jpeg", CategoryJPG},
		{"image/jpg", CategoryJPG},
		{"image/gif", CategoryGIF},
		{"image/svg+xml", CategorySVG},
		{"application/pdf", CategoryOther},
		{"", CategoryOther},
		// Priority: png substring wins over later matches.
		{"image/png+jpeg", CategoryPNG},
	}

	for _, tt := range tests {
		if got := Classify(tt.mime); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.mime, got.Label(), tt.want.Label())
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for _, mime := range []string{"image/png", "image/webp", "video/mp4"} {
		first := Classify(mime)
		for i := 0; i < 10; i++ {
			if got := Classify(mime); got != first {
				t.Fatalf("Classify(%q) not deterministic: %v then %v", mime, first, got)
			}
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{10485760, "10 MB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings should validate: %v", err)
	}

	s.URLLength = 3
	if err := s.Validate(); err == nil {
		t.Error("url_length below minimum should fail")
	}

	s.URLLength = 21
	if err := s.Validate(); err == nil {
		t.Error("url_length above maximum should fail")
	}

	s.URLLength = 20
	if err := s.Validate(); err != nil {
		t.Errorf("url_length at maximum should pass: %v", err)
	}

	s.AutoDeleteDays = -1
	if err := s.Validate(); err == nil {
		t.Error("negative auto_delete_days should fail")
	}
}

func TestBrowserInfo(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{"Mozilla/5.0 Chrome/120.0", "Chrome Browser"},
		{"Mozilla/5.0 Firefox/115.0", "Firefox Browser"},
		{"Mozilla/5.0 Safari/605.1", "Safari Browser"},
		{"", "Unknown Browser"},
		{"curl/8.0", "Desktop Browser"},
		{"Mobile Android", "Mobile Browser"},
	}

	for _, tt := range tests {
		s := Session{UserAgent: tt.ua}
		if got := s.BrowserInfo(); got != tt.want {
			t.Errorf("BrowserInfo(%q) = %q, want %q", tt.ua, got, tt.want)
		}
	}
}
