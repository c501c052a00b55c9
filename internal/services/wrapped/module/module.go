// Package module wires the wrapped service into the API using modkit
package module

import (
	"net/http"

	modkit "gitwrapped/internal/modkit"
	"gitwrapped/internal/modkit/httpkit"
	str "gitwrapped/internal/platform/strings"
	narrative "gitwrapped/internal/services/narrative/domain"
	"gitwrapped/internal/services/wrapped/domain"
	wrappedhttp "gitwrapped/internal/services/wrapped/http"
	wrappedsvc "gitwrapped/internal/services/wrapped/service"
)

// Ports exposed by the wrapped module
type Ports struct {
	Aggregator domain.AggregatorPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc     *wrappedsvc.Service
	persona narrative.GeneratorPort
}

// New constructs a wrapped module with the provided dependencies and options
// pass a narrative generator port via WithPorts to enable persona attachment
func New(deps modkit.Deps, persona narrative.GeneratorPort, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("wrapped"),
		modkit.WithPrefix("/wrapped"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	svc := wrappedsvc.New(deps.GitHub, wrappedsvc.Config{
		Churn: wrappedsvc.ChurnConfig{
			MaxRepos:   cfg.ChurnMaxRepos,
			Attempts:   cfg.ChurnAttempts,
			Delay:      cfg.ChurnDelay,
			OutlierMax: cfg.ChurnOutlierMax,
		},
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
		persona:   persona,
	}
	m.ports = Ports{Aggregator: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		wrappedhttp.Register(r, m.svc, m.persona)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "wrapped") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
