package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeUnknownCode       = "UNKNOWN_CODE"
	ErrCodeInactive          = "INACTIVE"
	ErrCodeNotYetValid       = "NOT_YET_VALID"
	ErrCodeExpired           = "EXPIRED"
	ErrCodeLimitReached      = "LIMIT_REACHED"
	ErrCodeBelowMinimum      = "BELOW_MINIMUM"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeVariantNotFound   = "VARIANT_NOT_FOUND"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeTotalMismatch     = "TOTAL_MISMATCH"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeInvalidTransition = "INVALID_STATUS_TRANSITION"
	ErrCodeMissingIdentity   = "MISSING_IDENTITY"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is an expected business outcome surfaced as a value rather
// than an opaque error string.
type DomainError struct {
	Code    string
	Message string
}

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
	ErrUnknownCoupon      = NewDomainError(ErrCodeUnknownCode, "Coupon code not found")
	ErrCouponInactive     = NewDomainError(ErrCodeInactive, "Coupon is not active")
	ErrCouponNotYetValid  = NewDomainError(ErrCodeNotYetValid, "Coupon is not valid yet")
	ErrCouponExpired      = NewDomainError(ErrCodeExpired, "Coupon has expired")
	ErrCouponLimitReached = NewDomainError(ErrCodeLimitReached, "Coupon usage limit reached")
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Cart must contain at least one item")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrVariantNotFound    = NewDomainError(ErrCodeVariantNotFound, "One or more product variants not found")
	ErrInsufficientStock  = NewDomainError(ErrCodeInsufficientStock, "Insufficient stock for one or more items")
	ErrTotalMismatch      = NewDomainError(ErrCodeTotalMismatch, "Submitted totals do not match server-side pricing")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidTransition  = NewDomainError(ErrCodeInvalidTransition, "Order status transition not allowed")
	ErrMissingIdentity    = NewDomainError(ErrCodeMissingIdentity, "Authenticated user or guest details required")
)
