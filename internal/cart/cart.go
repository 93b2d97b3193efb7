package cart

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/ontaste/internal/state"
)

// Engine mutates the cart held in the application state.
type Engine struct {
	st   *state.State
	deps state.Deps
}

// New creates an Engine over st.
func New(st *state.State, deps state.Deps) *Engine {
	return &Engine{st: st, deps: deps.WithDefaults()}
}

// AddItem puts one unit of the named item in the cart and persists.
//
// Checks run in order: a session must be active (ErrNotAuthenticated), the
// price must be finite and positive (ErrInvalidPrice), and name and image
// must be non-empty (ErrInvalidItem). A line with the same name has its
// quantity incremented; otherwise a new line with quantity 1 is appended.
// An addition that would push the cart total past the float64 range is
// ErrInvalidPrice and leaves the cart as it was.
func (e *Engine) AddItem(ctx context.Context, name string, price float64, image string) error {
	if !e.st.Authenticated() {
		return &CartError{Code: ErrCodeNotAuthenticated, Item: name}
	}
	if !state.ValidPrice(price) {
		return &CartError{Code: ErrCodeInvalidPrice, Item: name}
	}
	if name == "" || image == "" {
		return &CartError{Code: ErrCodeInvalidItem, Item: name}
	}

	i := e.st.CartIndexByName(name)
	unit := price
	if i >= 0 {
		unit = e.st.Cart[i].Price
	}
	if !finite(Total(e.st.Cart) + unit) {
		return &CartError{Code: ErrCodeInvalidPrice, Item: name}
	}

	if i >= 0 {
		if e.st.Cart[i].Quantity == math.MaxInt {
			return &CartError{Code: ErrCodeInvalidQuantity, Item: name}
		}
		e.st.Cart[i].Quantity++
		e.deps.Logger.Debug("cart line incremented", "item_id", e.st.Cart[i].ID, "name", name, "quantity", e.st.Cart[i].Quantity)
	} else {
		it := state.CartItem{
			ID:       e.deps.IDs.Generate(),
			Name:     name,
			Price:    price,
			Image:    image,
			Quantity: 1,
			AddedAt:  e.deps.Clock.Now().UTC(),
		}
		e.st.Cart = append(e.st.Cart, it)
		e.deps.Logger.Debug("cart line added", "item_id", it.ID, "name", name, "price", price)
	}

	return e.deps.Saver.SaveAll(ctx, e.st)
}

// AddItemString is AddItem for a raw price as read from a form field.
// A price that does not parse as a number is ErrInvalidPrice; the session
// check still runs first.
func (e *Engine) AddItemString(ctx context.Context, name, rawPrice, image string) error {
	if !e.st.Authenticated() {
		return &CartError{Code: ErrCodeNotAuthenticated, Item: name}
	}
	price, err := ParsePrice(rawPrice)
	if err != nil {
		return err
	}
	return e.AddItem(ctx, name, price, image)
}

// ParsePrice parses a decimal price. Surrounding spaces are ignored; the
// result must be finite and greater than zero.
func ParsePrice(raw string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !state.ValidPrice(p) {
		return 0, &CartError{Code: ErrCodeInvalidPrice}
	}
	return p, nil
}

// RemoveItem deletes the line with this id and persists. Removing an id
// that is not in the cart changes nothing but still flushes.
func (e *Engine) RemoveItem(ctx context.Context, itemID string) error {
	before := len(e.st.Cart)
	e.st.Cart = slices.DeleteFunc(e.st.Cart, func(it state.CartItem) bool { return it.ID == itemID })
	if len(e.st.Cart) != before {
		e.deps.Logger.Debug("cart line removed", "item_id", itemID)
	}
	return e.deps.Saver.SaveAll(ctx, e.st)
}

// ChangeQuantity adds delta to the line's quantity and persists. A result
// below 1 removes the line. Unknown ids are ignored without persisting.
// An increase that overflows the quantity or makes the cart total
// non-finite is ErrInvalidQuantity and changes nothing.
func (e *Engine) ChangeQuantity(ctx context.Context, itemID string, delta int) error {
	i := e.st.CartIndexByID(itemID)
	if i < 0 {
		return nil
	}
	line := e.st.Cart[i]
	if delta > 0 && line.Quantity > math.MaxInt-delta {
		return &CartError{Code: ErrCodeInvalidQuantity, Item: line.Name}
	}
	if line.Quantity+delta < 1 {
		return e.RemoveItem(ctx, itemID)
	}
	if delta > 0 && !finite(Total(e.st.Cart)+line.Price*float64(delta)) {
		return &CartError{Code: ErrCodeInvalidQuantity, Item: line.Name}
	}
	e.st.Cart[i].Quantity += delta
	return e.deps.Saver.SaveAll(ctx, e.st)
}

// Items returns a copy of the cart lines.
func (e *Engine) Items() []state.CartItem {
	return slices.Clone(e.st.Cart)
}

// Total returns the sum of price * quantity over the cart.
func (e *Engine) Total() float64 {
	return Total(e.st.Cart)
}

// ItemCount returns the number of units in the cart (not the number of lines).
func (e *Engine) ItemCount() int {
	return ItemCount(e.st.Cart)
}

// Total returns the sum of price * quantity over items.
func Total(items []state.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// ItemCount returns the sum of quantities over items.
func ItemCount(items []state.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
