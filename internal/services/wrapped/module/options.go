package module

import (
	"time"

	"gitwrapped/internal/platform/config"
)

// Options holds configuration settings for the wrapped module
type Options struct {
	ChurnMaxRepos   int
	ChurnAttempts   int
	ChurnDelay      time.Duration
	ChurnOutlierMax int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	wf := cfg.Prefix("WRAPPED_")
	return Options{
		ChurnMaxRepos:   wf.MayInt("CHURN_MAX_REPOS", 5),
		ChurnAttempts:   wf.MayInt("CHURN_ATTEMPTS", 3),
		ChurnDelay:      wf.MayDuration("CHURN_DELAY", 2*time.Second),
		ChurnOutlierMax: wf.MayInt("CHURN_OUTLIER_MAX", 50_000),
	}
}
