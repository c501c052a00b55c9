// Package docs holds the generated OpenAPI spec registration for the api service.
// The real spec is built with the swag tag; default builds serve a skeleton.
package docs
