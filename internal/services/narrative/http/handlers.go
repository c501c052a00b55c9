// Package http provides http transport for the narrative service
package http

import (
	stdhttp "net/http"

	"gitwrapped/internal/modkit/httpkit"
	"gitwrapped/internal/services/narrative/domain"
)

// Register mounts narrative endpoints on the given router
func Register(r httpkit.Router, gen domain.GeneratorPort) {
	h := &handlers{gen: gen}
	httpkit.PostJSON[domain.Projection](r, "/", h.generate)
}

type handlers struct{ gen domain.GeneratorPort }

// swagger:route POST /narrative Narrative narrativeGenerate
// @Summary Generate a persona from a snapshot projection
// @Tags Narrative
// @Accept json
// @Produce json
// @Param payload body domain.Projection true "Snapshot projection"
// @Success 200 type domain.Persona "ok"
// @Router /narrative [post]
func (h *handlers) generate(r *stdhttp.Request, in domain.Projection) (any, error) {
	return h.gen.Generate(r.Context(), in), nil
}
