// Package modkit provides module wiring and core deps
package modkit

import (
	"gitwrapped/internal/adapters/github"
	"gitwrapped/internal/platform/config"
	"gitwrapped/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	GitHub *github.Client
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the GitHub client
func (d Deps) ZeroOK() bool { return true }
