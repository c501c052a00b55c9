// Package http provides http transport for the wrapped service
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"gitwrapped/internal/modkit/httpkit"
	"gitwrapped/internal/platform/net/http/bind"
	narrative "gitwrapped/internal/services/narrative/domain"
	"gitwrapped/internal/services/wrapped/domain"
)

// Register mounts wrapped endpoints on the given router
// the narrative port is optional; when nil the with_persona flag is ignored
func Register(r httpkit.Router, agg domain.AggregatorPort, persona narrative.GeneratorPort) {
	h := &handlers{agg: agg, persona: persona}
	httpkit.PostJSON[domain.WrappedInput](r, "/", h.aggregate)
	httpkit.Get(r, "/{username}", h.public)
}

type handlers struct {
	agg     domain.AggregatorPort
	persona narrative.GeneratorPort
}

// WrappedResponse is a snapshot with an optional attached persona
type WrappedResponse struct {
	domain.Snapshot
	Persona *narrative.Persona `json:"persona,omitempty"`
}

// swagger:route POST /wrapped Wrapped wrappedAggregate
// @Summary Build a yearly activity snapshot
// @Tags Wrapped
// @Accept json
// @Produce json
// @Param payload body domain.WrappedInput true "Aggregation request"
// @Success 200 type WrappedResponse "ok"
// @Router /wrapped [post]
func (h *handlers) aggregate(r *stdhttp.Request, in domain.WrappedInput) (any, error) {
	snap, err := h.agg.Aggregate(r.Context(), in.Username, in.Token)
	if err != nil {
		return nil, err
	}
	out := WrappedResponse{Snapshot: snap}
	if in.WithPersona && h.persona != nil {
		p := h.persona.Generate(r.Context(), narrative.ProjectionOf(snap))
		out.Persona = &p
	}
	return out, nil
}

// swagger:route GET /wrapped/{username} Wrapped wrappedPublic
// @Summary Build a public path snapshot for a user
// @Tags Wrapped
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 type domain.Snapshot "ok"
// @Router /wrapped/{username} [get]
func (h *handlers) public(r *stdhttp.Request) (any, error) {
	username := chi.URLParam(r, "username")
	if err := bind.Var(username, "required,gh_login", "username"); err != nil {
		return nil, err
	}
	return h.agg.Aggregate(r.Context(), username, "")
}
