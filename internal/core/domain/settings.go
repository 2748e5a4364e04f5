package domain

import "fmt"

// URL length bounds enforced on the urlLength setting.
const (
	MinURLLength = 4
	MaxURLLength = 20
)

// ClientSettings are the user-tunable upload preferences. They are
// persisted locally and read at startup; the backend never stores them.
type ClientSettings struct {
	AnonymousUpload bool `yaml:"anonymous_upload"`
	DiscordEmbed    bool `yaml:"discord_embed"`
	AutoDeleteDays  int  `yaml:"auto_delete_days"`
	URLLength       int  `yaml:"url_length"`
}

// DefaultSettings returns the settings applied before any save.
func DefaultSettings() ClientSettings {
	return ClientSettings{
		AnonymousUpload: false,
		DiscordEmbed:    true,
		AutoDeleteDays:  0,
		URLLength:       8,
	}
}

// Validate checks the settings invariants.
func (s *ClientSettings) Validate() error {
	if s.URLLength < MinURLLength || s.URLLength > MaxURLLength {
		return fmt.Errorf("url_length must be between %d and %d, got %d",
			MinURLLength, MaxURLLength, s.URLLength)
	}
	if s.AutoDeleteDays < 0 {
		return fmt.Errorf("auto_delete_days cannot be negative, got %d", s.AutoDeleteDays)
	}
	return nil
}
