package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "ERR_INTERNAL"
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	ErrCodeValidation = "ERR_VALIDATION"
	ErrCodeNotFound   = "ERR_NOT_FOUND"
)

// domainStatus maps domain error codes to HTTP status codes. Codes not
// listed here default to 422: the request was well formed but the
// business rules rejected it.
var domainStatus = map[string]int{
	"NOT_FOUND":            http.StatusNotFound,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_FORMAT":       http.StatusBadRequest,
	"INVALID_FAMILY":       http.StatusBadRequest,
	"FORMAT_NOT_AVAILABLE": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := domainStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
