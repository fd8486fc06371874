package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound     = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidDate  = NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
	ErrInvalidRange = NewDomainError("INVALID_RANGE", "Start date must not be after end date")
	ErrShopRequired = NewDomainError("SHOP_REQUIRED", "Shop domain is required")
)
