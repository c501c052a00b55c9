package httpkit

import (
	"net/http"

	phttp "gitwrapped/internal/platform/net/http"
)

// Get mounts a pure JSON handler for GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON mounts a bound and validated JSON handler for POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON[T](r, path, h)
}
