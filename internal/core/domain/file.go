package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FileRecord is the backend's representation of one stored image.
// The client holds these read-only; the set is refetched after any
// mutating call rather than patched in place.
type FileRecord struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	FileSize     int64  `json:"file_size"`
	UploadDate   string `json:"upload_date"`
	UploaderName string `json:"uploader_name,omitempty"`
}

// uploadDateLayouts are the timestamp shapes the backend has been seen
// emitting. Tried in order.
var uploadDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UploadedAt parses the record's upload timestamp in the local timezone.
// A malformed date returns ok=false; callers treat such records as
// "not today" and exclude them from time buckets instead of failing.
func (f *FileRecord) UploadedAt() (time.Time, bool) {
	s := strings.TrimSpace(f.UploadDate)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range uploadDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Local(), true
		}
	}
	return time.Time{}, false
}

// IsImage reports whether the record's MIME type is in the image family.
func (f *FileRecord) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(f.FileType), "image/")
}

// DisplayDate returns a human-readable upload date, falling back to the
// raw string when it cannot be parsed.
func (f *FileRecord) DisplayDate() string {
	t, ok := f.UploadedAt()
	if !ok {
		return f.UploadDate
	}
	return t.Format("Jan 02, 2006")
}

// User is the authenticated profile returned by /users/me.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is one active login session as reported by /sessions.
type Session struct {
	SessionToken string `json:"session_token"`
	UserAgent    string `json:"user_agent"`
	IPAddress    string `json:"ip_address"`
	LastActive   string `json:"last_active"`
	IsActive     bool   `json:"is_active"`
}

// BrowserInfo derives a short device description from the session's
// user agent string.
func (s *Session) BrowserInfo() string {
	ua := s.UserAgent
	if ua == "" {
		return "Unknown Browser"
	}
	switch {
	case strings.Contains(ua, "Chrome"):
		return "Chrome Browser"
	case strings.Contains(ua, "Firefox"):
		return "Firefox Browser"
	case strings.Contains(ua, "Safari"):
		return "Safari Browser"
	case strings.Contains(ua, "Edge"):
		return "Edge Browser"
	case strings.Contains(ua, "Mobile"):
		return "Mobile Browser"
	}
	return "Desktop Browser"
}

// IsMobile reports whether the session looks like a mobile device.
func (s *Session) IsMobile() bool {
	return strings.Contains(s.UserAgent, "Mobile")
}

// FormatSize renders a byte count as a humanized string ("1.5 MB").
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	const k = 1024
	sizes := []string{"B", "KB", "MB", "GB", "TB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	v := float64(bytes) / math.Pow(k, float64(i))
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + " " + sizes[i]
}
