package storefront

import (
	"errors"

	"github.com/roach88/ontaste/internal/cart"
	"github.com/roach88/ontaste/internal/order"
	"github.com/roach88/ontaste/internal/session"
	"github.com/roach88/ontaste/internal/store"
)

// ErrorCode returns the code of a typed storefront error (for example
// "DUPLICATE_EMAIL" or "WRITE_FAILED"), or "" if err is nil or untyped.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var ae *session.AuthError
	if errors.As(err, &ae) {
		return string(ae.Code)
	}
	var ce *cart.CartError
	if errors.As(err, &ce) {
		return string(ce.Code)
	}
	var oe *order.OrderError
	if errors.As(err, &oe) {
		return string(oe.Code)
	}
	var pe *store.PersistError
	if errors.As(err, &pe) {
		return string(pe.Code)
	}
	return ""
}
