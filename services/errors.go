package services

// Stable machine-readable error kinds carried alongside the user-facing
// message in every error response.
const (
	KindValidation   = "validation"
	KindClosed       = "closed"
	KindNotFound     = "not_found"
	KindUnauthorized = "unauthorized"
	KindInternal     = "internal"
)

// ServiceError represents a typed error with an HTTP status code and a
// stable kind for clients and tests.
type ServiceError struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}
