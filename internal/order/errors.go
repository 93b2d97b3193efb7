package order

import "fmt"

// OrderErrorCode categorizes rejected orders.
type OrderErrorCode string

const (
	// ErrCodeNotAuthenticated indicates no user is signed in.
	ErrCodeNotAuthenticated OrderErrorCode = "NOT_AUTHENTICATED"

	// ErrCodeEmptyCart indicates there is nothing to order.
	ErrCodeEmptyCart OrderErrorCode = "EMPTY_CART"

	// ErrCodeMissingPickupTime indicates no pickup time was given.
	ErrCodeMissingPickupTime OrderErrorCode = "MISSING_PICKUP_TIME"

	// ErrCodeInvalidPickupTime indicates the pickup time is not HH:MM.
	ErrCodeInvalidPickupTime OrderErrorCode = "INVALID_PICKUP_TIME"

	// ErrCodePickupTimeOutOfRange indicates pickup outside opening hours.
	ErrCodePickupTimeOutOfRange OrderErrorCode = "PICKUP_TIME_OUT_OF_RANGE"
)

// OrderError reports a rejected order.
type OrderError struct {
	Code       OrderErrorCode
	PickupTime string
}

// Sentinels for errors.Is. They match any *OrderError with the same code.
var (
	ErrNotAuthenticated     = &OrderError{Code: ErrCodeNotAuthenticated}
	ErrEmptyCart            = &OrderError{Code: ErrCodeEmptyCart}
	ErrMissingPickupTime    = &OrderError{Code: ErrCodeMissingPickupTime}
	ErrInvalidPickupTime    = &OrderError{Code: ErrCodeInvalidPickupTime}
	ErrPickupTimeOutOfRange = &OrderError{Code: ErrCodePickupTimeOutOfRange}
)

func (e *OrderError) Error() string {
	switch e.Code {
	case ErrCodeNotAuthenticated:
		return fmt.Sprintf("%s: sign in to place an order", e.Code)
	case ErrCodeEmptyCart:
		return fmt.Sprintf("%s: cart is empty", e.Code)
	case ErrCodeMissingPickupTime:
		return fmt.Sprintf("%s: choose a pickup time", e.Code)
	case ErrCodeInvalidPickupTime:
		return fmt.Sprintf("%s: pickup time %q is not HH:MM", e.Code, e.PickupTime)
	case ErrCodePickupTimeOutOfRange:
		return fmt.Sprintf("%s: pickup time %s is outside %02d:00-%02d:00", e.Code, e.PickupTime, OpeningHour, ClosingHour)
	default:
		return string(e.Code)
	}
}

// Is matches on Code.
func (e *OrderError) Is(target error) bool {
	t, ok := target.(*OrderError)
	return ok && t.Code == e.Code
}
