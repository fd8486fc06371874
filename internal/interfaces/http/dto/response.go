package dto

import "net/http"

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// Common error codes
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// statusByCode maps domain error codes to HTTP status codes
var statusByCode = map[string]int{
	ErrCodeBadRequest: http.StatusBadRequest,
	"INVALID_INPUT":   http.StatusBadRequest,
	"INVALID_DATE":    http.StatusBadRequest,
	"INVALID_RANGE":   http.StatusBadRequest,
	"SHOP_REQUIRED":   http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,
	ErrCodeInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
