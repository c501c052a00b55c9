// Package api provides the HTTP API for the application
package api

import (
	gh "gitwrapped/internal/adapters/github"
	"gitwrapped/internal/platform/config"
	"gitwrapped/internal/platform/logger"
	phttp "gitwrapped/internal/platform/net/http"

	"gitwrapped/internal/modkit"
	"gitwrapped/internal/modkit/httpkit"
	"gitwrapped/internal/modkit/module"
	"gitwrapped/internal/modkit/swaggerkit"

	metamod "gitwrapped/internal/services/api/meta/module"
	narrativemod "gitwrapped/internal/services/narrative/module"
	wrappedmod "gitwrapped/internal/services/wrapped/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Logger        *logger.Logger
	GitHub        *gh.Client
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		GitHub: opt.GitHub,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// the narrative module is built first so its generator port can be
	// handed to the wrapped module for persona attachment
	narrativeMod := narrativemod.New(deps)
	gen := module.MustPortsOf[narrativemod.Ports](narrativeMod).Generator

	mods := []module.Module{
		metamod.New(deps),
		narrativeMod,
		wrappedmod.New(deps, gen),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}
