package gateway

import "fmt"

// APIError is a non-2xx response from the commerce backend. Detail holds
// the server-provided human-readable message when the body carried one,
// otherwise the per-endpoint default.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
}

// errorBody is the optional shape of non-2xx response bodies.
type errorBody struct {
	Detail string `json:"detail"`
}
