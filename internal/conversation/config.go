package conversation

import (
	"os"
	"strconv"
)

// Config holds conversation-manager tunables.
type Config struct {
	// RecentUpdateDays is the window within which a profile update is
	// treated as "circumstances changed" when the user already follows
	// a career path.
	RecentUpdateDays int

	// MinContextChars is the length a prior reply must exceed for the
	// manager to reference earlier conversation. A reply of exactly
	// this length is not enough.
	MinContextChars int
}

// DefaultConfig returns the conversation defaults.
func DefaultConfig() Config {
	return Config{
		RecentUpdateDays: 7,
		MinContextChars:  50,
	}
}

// LoadConfig reads conversation configuration from environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("COMPASS_RECENT_UPDATE_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RecentUpdateDays = n
		}
	}
	if v := os.Getenv("COMPASS_MIN_CONTEXT_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinContextChars = n
		}
	}
	return cfg
}
