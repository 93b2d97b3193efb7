package store

import (
	"context"
	"log/slog"

	"github.com/roach88/ontaste/internal/state"
)

// Adapter loads and saves the storefront state through a Backend.
type Adapter struct {
	backend Backend
	logger  *slog.Logger
}

// NewAdapter wraps backend. A nil logger means slog.Default().
func NewAdapter(backend Backend, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{backend: backend, logger: logger}
}

// Load reads all four slots. It never fails: every slot that cannot be read
// or parsed falls back to its default, and invalid cart lines are dropped.
func (a *Adapter) Load(ctx context.Context) *state.State {
	return &state.State{
		Users:       a.LoadUsers(ctx),
		CurrentUser: a.LoadCurrentUser(ctx),
		Cart:        a.LoadCart(ctx),
		Orders:      a.LoadOrders(ctx),
	}
}

// LoadUsers returns the user registry, or an empty one.
func (a *Adapter) LoadUsers(ctx context.Context) []state.User {
	data, ok := a.read(ctx, SlotUsers)
	if !ok {
		return []state.User{}
	}
	users, err := unmarshalUsers(data)
	if err != nil {
		a.discard(SlotUsers, err)
		return []state.User{}
	}
	return users
}

// LoadCurrentUser returns the stored session, or nil.
func (a *Adapter) LoadCurrentUser(ctx context.Context) *state.User {
	data, ok := a.read(ctx, SlotCurrentUser)
	if !ok {
		return nil
	}
	u, err := unmarshalCurrentUser(data)
	if err != nil {
		a.discard(SlotCurrentUser, err)
		return nil
	}
	return u
}

// LoadCart returns the stored cart after sanitizing it.
func (a *Adapter) LoadCart(ctx context.Context) []state.CartItem {
	data, ok := a.read(ctx, SlotCart)
	if !ok {
		return []state.CartItem{}
	}
	items, skipped, err := unmarshalCart(data)
	if err != nil {
		a.discard(SlotCart, err)
		return []state.CartItem{}
	}
	kept, dropped := state.SanitizeCart(items)
	if n := skipped + dropped; n > 0 {
		a.logger.Warn("invalid cart lines dropped on load",
			"slot", string(SlotCart),
			"dropped", n,
			"kept", len(kept),
		)
	}
	return kept
}

// LoadOrders returns the order registry, or an empty one.
func (a *Adapter) LoadOrders(ctx context.Context) []state.Order {
	data, ok := a.read(ctx, SlotOrders)
	if !ok {
		return []state.Order{}
	}
	orders, err := unmarshalOrders(data)
	if err != nil {
		a.discard(SlotOrders, err)
		return []state.Order{}
	}
	return orders
}

// SaveAll writes all four slots together. Failures are reported as
// *PersistError with ErrCodeWriteFailed.
func (a *Adapter) SaveAll(ctx context.Context, st *state.State) error {
	docs, err := encodeState(st)
	if err != nil {
		a.logger.Error("state flush failed", "stage", "encode", "error", err)
		return &PersistError{Code: ErrCodeWriteFailed, Err: err}
	}
	if err := a.backend.WriteSlots(ctx, docs); err != nil {
		a.logger.Error("state flush failed", "stage", "write", "error", err)
		return &PersistError{Code: ErrCodeWriteFailed, Err: err}
	}
	return nil
}

func (a *Adapter) read(ctx context.Context, slot Slot) (string, bool) {
	data, ok, err := a.backend.ReadSlot(ctx, slot)
	if err != nil {
		a.discard(slot, err)
		return "", false
	}
	return data, ok
}

func (a *Adapter) discard(slot Slot, err error) {
	a.logger.Warn("slot unreadable, using default", "slot", string(slot), "error", err)
}
