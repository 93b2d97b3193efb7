package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/ontaste/internal/state"
)

// marshalDoc converts v to JSON TEXT for storage.
// HTML escaping is disabled so stored documents match what the browser
// storefront's JSON.stringify produced.
func marshalDoc(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	// Encoder adds a trailing newline, remove it
	return strings.TrimSpace(buf.String()), nil
}

// encodeState renders all four slots of st.
func encodeState(st *state.State) (map[Slot]string, error) {
	users := st.Users
	if users == nil {
		users = []state.User{}
	}
	cart := st.Cart
	if cart == nil {
		cart = []state.CartItem{}
	}
	orders := st.Orders
	if orders == nil {
		orders = []state.Order{}
	}

	values := map[Slot]any{
		SlotUsers:       users,
		SlotCurrentUser: st.CurrentUser,
		SlotCart:        cart,
		SlotOrders:      orders,
	}

	docs := make(map[Slot]string, len(values))
	for _, slot := range AllSlots {
		data, err := marshalDoc(values[slot])
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", slot, err)
		}
		docs[slot] = data
	}
	return docs, nil
}

// unmarshalUsers parses the users slot. null decodes to an empty registry.
func unmarshalUsers(data string) ([]state.User, error) {
	var users []state.User
	if err := json.Unmarshal([]byte(data), &users); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}
	if users == nil {
		users = []state.User{}
	}
	return users, nil
}

// unmarshalCurrentUser parses the currentUser slot. null means no session.
func unmarshalCurrentUser(data string) (*state.User, error) {
	var u *state.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, fmt.Errorf("unmarshal current user: %w", err)
	}
	return u, nil
}

// unmarshalCart parses the cart slot entry by entry. Entries that fail to
// decode are skipped and counted in skipped; the caller still has to
// sanitize the result.
func unmarshalCart(data string) (items []state.CartItem, skipped int, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, 0, fmt.Errorf("unmarshal cart: %w", err)
	}

	items = make([]state.CartItem, 0, len(raw))
	for _, entry := range raw {
		var it state.CartItem
		if err := json.Unmarshal(entry, &it); err != nil {
			skipped++
			continue
		}
		items = append(items, it)
	}
	return items, skipped, nil
}

// unmarshalOrders parses the orders slot. null decodes to no orders.
func unmarshalOrders(data string) ([]state.Order, error) {
	var orders []state.Order
	if err := json.Unmarshal([]byte(data), &orders); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}
	if orders == nil {
		orders = []state.Order{}
	}
	return orders, nil
}
