package dto

// ErrorResponse is the body of every API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
	Row   int    `json:"row,omitempty"`
}
