package domain

// WrappedInput is the request body for the wrapped endpoint
type WrappedInput struct {
	Username    string `json:"username"     validate:"required,gh_login"`
	Token       string `json:"token"        validate:"omitempty,max=255"`
	WithPersona bool   `json:"with_persona"`
}
