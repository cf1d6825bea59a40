package types

// SubmitResponse acknowledges an accepted suggestion with its generated ID.
type SubmitResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// ListResponse carries a bounded, recency-ordered set of suggestions.
type ListResponse struct {
	OK    bool         `json:"ok"`
	Items []Suggestion `json:"items"`
}

// ErrorResponse is the uniform failure shape for all API endpoints.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// HealthResponse is returned unconditionally by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
