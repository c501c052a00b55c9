package module

import (
	"time"

	"gitwrapped/internal/platform/config"
)

// Options holds configuration settings for the narrative module
type Options struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	nf := cfg.Prefix("NARRATIVE_")
	return Options{
		Endpoint: nf.MayString("ENDPOINT", ""),
		APIKey:   nf.MayString("API_KEY", ""),
		Timeout:  nf.MayDuration("TIMEOUT", 15*time.Second),
	}
}
