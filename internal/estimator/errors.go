package estimator

import "fmt"

// Domain error codes.
const (
	ErrCodeInvalidFloorArea = "INVALID_FLOOR_AREA"
	ErrCodeNonFiniteInput   = "NON_FINITE_INPUT"
	ErrCodeNonFiniteResult  = "NON_FINITE_RESULT"
)

// DomainError reports a continuous input outside the mathematically
// valid range for the configured transform. Retrying with the same
// input reproduces the same error; there is no recoverable variant.
type DomainError struct {
	Code    string  `json:"code"`
	Field   string  `json:"field"`
	Value   float64 `json:"value"`
	Message string  `json:"message"`
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("[%s] %s: %s (got %v)", e.Code, e.Field, e.Message, e.Value)
}

func newInvalidFloorAreaError(area float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidFloorArea,
		Field:   "floor_area",
		Value:   area,
		Message: "floor area must be positive",
	}
}

func newNonFiniteInputError(field string, value float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeNonFiniteInput,
		Field:   field,
		Value:   value,
		Message: "input must be a finite number",
	}
}

func newNonFiniteResultError(logPrice float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeNonFiniteResult,
		Field:   "log_price",
		Value:   logPrice,
		Message: "inputs drove the regression to a non-finite result",
	}
}
