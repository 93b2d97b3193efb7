package storefront

import (
	"context"
	"log/slog"

	"github.com/roach88/ontaste/internal/cart"
	"github.com/roach88/ontaste/internal/catalog"
	"github.com/roach88/ontaste/internal/clock"
	"github.com/roach88/ontaste/internal/ids"
	"github.com/roach88/ontaste/internal/order"
	"github.com/roach88/ontaste/internal/session"
	"github.com/roach88/ontaste/internal/state"
)

// Store loads and flushes the whole state. *store.Adapter implements it.
type Store interface {
	state.Saver
	Load(ctx context.Context) *state.State
}

// Options override the engines' collaborators. Zero values use the system
// clock, UUIDv7 ids and slog.Default().
type Options struct {
	Clock  clock.Clock
	IDs    ids.Generator
	Logger *slog.Logger
}

// Storefront wires the engines around one application state.
type Storefront struct {
	store   Store
	catalog *catalog.Catalog
	deps    state.Deps
	st      *state.State

	Session *session.Manager
	Cart    *cart.Engine
	Orders  *order.Engine
}

// CartSummary is the cart as the view displays it.
type CartSummary struct {
	Items []state.CartItem `json:"items"`
	Count int              `json:"count"`
	Total float64          `json:"total"`
}

// Open loads the state from s and builds the engines over it.
func Open(ctx context.Context, s Store, cat *catalog.Catalog, opts Options) *Storefront {
	deps := state.Deps{
		Saver:  s,
		Clock:  opts.Clock,
		IDs:    opts.IDs,
		Logger: opts.Logger,
	}.WithDefaults()

	f := &Storefront{
		store:   s,
		catalog: cat,
		deps:    deps,
		st:      s.Load(ctx),
	}
	f.Session = session.New(f.st, deps)
	f.Cart = cart.New(f.st, deps)
	f.Orders = order.New(f.st, deps)

	deps.Logger.Debug("storefront opened",
		"users", len(f.st.Users),
		"signed_in", f.st.Authenticated(),
		"cart_lines", len(f.st.Cart),
		"orders", len(f.st.Orders),
		"menu_items", cat.Len(),
	)
	return f
}

// Reload discards the in-memory state and reads it again from the store.
// The engines keep working on the same state value.
func (f *Storefront) Reload(ctx context.Context) {
	*f.st = *f.store.Load(ctx)
}

// Flush writes the current state to the store.
func (f *Storefront) Flush(ctx context.Context) error {
	return f.store.SaveAll(ctx, f.st)
}

// Catalog returns the menu.
func (f *Storefront) Catalog() *catalog.Catalog {
	return f.catalog
}

// Snapshot returns a deep copy of the current state.
func (f *Storefront) Snapshot() *state.State {
	return f.st.Clone()
}

// AddMenuItem adds one unit of the catalog item with this id to the cart.
// An unknown id is ErrInvalidItem; the session check runs first.
func (f *Storefront) AddMenuItem(ctx context.Context, id string) error {
	if !f.st.Authenticated() {
		return &cart.CartError{Code: cart.ErrCodeNotAuthenticated, Item: id}
	}
	m, ok := f.catalog.Lookup(id)
	if !ok {
		return &cart.CartError{Code: cart.ErrCodeInvalidItem, Item: id}
	}
	return f.Cart.AddItem(ctx, m.Name, m.Price, m.Image)
}

// CartSummary returns the cart lines with their unit count and total.
func (f *Storefront) CartSummary() CartSummary {
	return CartSummary{
		Items: f.Cart.Items(),
		Count: f.Cart.ItemCount(),
		Total: f.Cart.Total(),
	}
}
