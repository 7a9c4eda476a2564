package api

import "fmt"

// APIError is an error reported by the control-plane service. It is carried
// through unchanged; nothing in this layer retries or rewrites it.
type APIError struct {
	Code    int    // HTTP status code
	Message string // service-provided message, may be empty
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("control-plane error %d", e.Code)
	}
	return fmt.Sprintf("control-plane error %d: %s", e.Code, e.Message)
}

// IsNotFound reports whether the error is the service's 404 response.
func (e *APIError) IsNotFound() bool {
	return e.Code == 404
}

// errorEnvelope is the JSON error body shape.
type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
