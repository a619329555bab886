package dto

// ErrorResponse is the HTTP error body. All failures share the one-field shape
// the web UI already consumes.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NameRef is an id+name pair used when a response embeds a resolved reference.
type NameRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
