package cart

import "fmt"

// CartErrorCode categorizes rejected cart operations.
type CartErrorCode string

const (
	// ErrCodeNotAuthenticated indicates no user is signed in.
	ErrCodeNotAuthenticated CartErrorCode = "NOT_AUTHENTICATED"

	// ErrCodeInvalidPrice indicates the price is not a finite number > 0.
	ErrCodeInvalidPrice CartErrorCode = "INVALID_PRICE"

	// ErrCodeInvalidItem indicates the item has no name or no image.
	ErrCodeInvalidItem CartErrorCode = "INVALID_ITEM"

	// ErrCodeInvalidQuantity indicates the quantity change is out of range.
	ErrCodeInvalidQuantity CartErrorCode = "INVALID_QUANTITY"
)

// CartError reports a rejected cart operation.
type CartError struct {
	Code CartErrorCode
	Item string
}

// Sentinels for errors.Is. They match any *CartError with the same code.
var (
	ErrNotAuthenticated = &CartError{Code: ErrCodeNotAuthenticated}
	ErrInvalidPrice     = &CartError{Code: ErrCodeInvalidPrice}
	ErrInvalidItem      = &CartError{Code: ErrCodeInvalidItem}
	ErrInvalidQuantity  = &CartError{Code: ErrCodeInvalidQuantity}
)

func (e *CartError) Error() string {
	var msg string
	switch e.Code {
	case ErrCodeNotAuthenticated:
		msg = "sign in to add items to the cart"
	case ErrCodeInvalidPrice:
		msg = "invalid item price"
	case ErrCodeInvalidItem:
		msg = "item requires a name and an image"
	case ErrCodeInvalidQuantity:
		msg = "quantity change is out of range"
	default:
		return string(e.Code)
	}
	if e.Item != "" {
		return fmt.Sprintf("%s: %s (item=%s)", e.Code, msg, e.Item)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Is matches on Code.
func (e *CartError) Is(target error) bool {
	t, ok := target.(*CartError)
	return ok && t.Code == e.Code
}
