package hub

import (
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Settings are per-hub import settings. Zero values inherit the global default.
type Settings struct {
	ExcerptMaxLength int `json:"excerpt_max_length,omitempty"`
	WordsPerMinute   int `json:"words_per_minute,omitempty"`
}

// Validate checks the settings are within sane bounds.
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ExcerptMaxLength, validation.Min(0), validation.Max(10000)),
		validation.Field(&s.WordsPerMinute, validation.Min(0), validation.Max(2000)),
	)
}

// Merge returns s with zero fields taken from defaults.
func (s Settings) Merge(defaults Settings) Settings {
	if s.ExcerptMaxLength == 0 {
		s.ExcerptMaxLength = defaults.ExcerptMaxLength
	}
	if s.WordsPerMinute == 0 {
		s.WordsPerMinute = defaults.WordsPerMinute
	}
	return s
}

// SettingKeys lists the keys accepted by Set.
var SettingKeys = []string{"description", "excerpt_max_length", "words_per_minute"}

// Set updates a hub field by key. Call Save() to persist.
func (h *Hub) Set(key, value string) error {
	switch key {
	case "description":
		h.Description = value
		return nil
	case "excerpt_max_length", "words_per_minute":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		next := h.Settings
		if key == "excerpt_max_length" {
			next.ExcerptMaxLength = n
		} else {
			next.WordsPerMinute = n
		}
		if err := next.Validate(); err != nil {
			return err
		}
		h.Settings = next
		return nil
	default:
		return fmt.Errorf("unknown hub setting %q (valid: %v)", key, SettingKeys)
	}
}
