// Package module wires the narrative service into the API using modkit
package module

import (
	"net/http"

	modkit "gitwrapped/internal/modkit"
	"gitwrapped/internal/modkit/httpkit"
	str "gitwrapped/internal/platform/strings"
	"gitwrapped/internal/services/narrative/domain"
	narrhttp "gitwrapped/internal/services/narrative/http"
	narrsvc "gitwrapped/internal/services/narrative/service"
)

// Ports exposed by the narrative module
type Ports struct {
	Generator domain.GeneratorPort
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

	svc *narrsvc.Service
}

// New constructs a narrative module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("narrative"),
		modkit.WithPrefix("/narrative"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	svc := narrsvc.New(narrsvc.Config{
		Endpoint: cfg.Endpoint,
		APIKey:   cfg.APIKey,
		Timeout:  cfg.Timeout,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Generator: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		narrhttp.Register(r, m.svc)
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
func (m *Module) Name() string { return str.MustString(m.name, "narrative") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
