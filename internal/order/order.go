package order

import (
	"context"
	"slices"
	"strings"

	"github.com/roach88/ontaste/internal/cart"
	"github.com/roach88/ontaste/internal/state"
)

// Engine places orders and queries the order registry.
type Engine struct {
	st   *state.State
	deps state.Deps
}

// New creates an Engine over st.
func New(st *state.State, deps state.Deps) *Engine {
	return &Engine{st: st, deps: deps.WithDefaults()}
}

// PlaceOrder commits the cart as a new order for the signed-in user.
//
// On success the order (status processing, a snapshot of the cart lines and
// their total) is appended to the registry, the cart is emptied and the
// state is flushed. On a validation error nothing changes.
func (e *Engine) PlaceOrder(ctx context.Context, pickupTime string) (state.Order, error) {
	if !e.st.Authenticated() {
		return state.Order{}, &OrderError{Code: ErrCodeNotAuthenticated}
	}
	if len(e.st.Cart) == 0 {
		return state.Order{}, &OrderError{Code: ErrCodeEmptyCart}
	}
	if err := ValidatePickupTime(pickupTime); err != nil {
		return state.Order{}, err
	}

	now := e.deps.Clock.Now()
	o := state.Order{
		ID:         e.deps.IDs.Generate(),
		UserEmail:  e.st.CurrentUser.Email,
		Items:      slices.Clone(e.st.Cart),
		Total:      cart.Total(e.st.Cart),
		PickupTime: strings.TrimSpace(pickupTime),
		Date:       now.Format(state.DateLayout),
		Status:     state.StatusProcessing,
		CreatedAt:  now.UTC(),
	}
	e.st.Orders = append(e.st.Orders, o)
	e.st.ClearCart()

	if err := e.deps.Saver.SaveAll(ctx, e.st); err != nil {
		return state.Order{}, err
	}
	e.deps.Logger.Info("order placed",
		"order_id", o.ID,
		"email", o.UserEmail,
		"lines", len(o.Items),
		"total", o.Total,
		"pickup_time", o.PickupTime,
	)
	return cloneOrder(o), nil
}

// ForUser returns the orders placed with this email, most recent first.
// Orders with equal timestamps keep their placement order.
func (e *Engine) ForUser(email string) []state.Order {
	out := make([]state.Order, 0)
	for _, o := range e.st.Orders {
		if o.UserEmail == email {
			out = append(out, cloneOrder(o))
		}
	}
	slices.SortStableFunc(out, func(a, b state.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

// ForCurrentUser returns ForUser for the signed-in user, or nil without a
// session.
func (e *Engine) ForCurrentUser() []state.Order {
	if e.st.CurrentUser == nil {
		return nil
	}
	return e.ForUser(e.st.CurrentUser.Email)
}

// All returns every order in placement order.
func (e *Engine) All() []state.Order {
	out := make([]state.Order, len(e.st.Orders))
	for i, o := range e.st.Orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func cloneOrder(o state.Order) state.Order {
	o.Items = slices.Clone(o.Items)
	return o
}
