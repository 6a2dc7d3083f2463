package errors

import "net/http"

// ToHTTPStatus maps an error code to an HTTP status code.
func ToHTTPStatus(code string) int {
	switch code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrValidation:
		return http.StatusBadRequest
	case ErrInvalidState:
		return http.StatusConflict
	case ErrUpstream:
		return http.StatusBadGateway
	case ErrUnauthenticated:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
