// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"gitwrapped/internal/core/version"
	"gitwrapped/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/healthz", h.healthz)
	httpkit.Get(r, "/info", h.info)
	httpkit.Get(r, "/version", h.version)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"gitwrapped-api"`
	Started string `json:"started" example:"2026-01-03T13:00:00Z"`
	Now     string `json:"now"     example:"2026-01-03T13:05:00Z"`
}

// InfoResponse describes service info
type InfoResponse struct {
	Name    string            `json:"name"    example:"gitwrapped-api"`
	Started string            `json:"started" example:"2026-01-03T13:00:00Z"`
	Uptime  int64             `json:"uptime"  example:"300"`
	Build   version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/healthz Meta metaHealthz
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "ok"
// @Router /meta/healthz [get]
func (h *handlers) healthz(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/info Meta metaInfo
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type InfoResponse "ok"
// @Router /meta/info [get]
func (h *handlers) info(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return InfoResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
		Build:   version.Info(),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}
