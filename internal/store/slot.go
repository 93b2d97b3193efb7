package store

import "context"

// Slot names one unit of persisted state.
type Slot string

const (
	SlotUsers       Slot = "users"
	SlotCurrentUser Slot = "currentUser"
	SlotCart        Slot = "cart"
	SlotOrders      Slot = "orders"
)

// AllSlots lists every slot in write order.
var AllSlots = []Slot{SlotUsers, SlotCurrentUser, SlotCart, SlotOrders}

// Backend stores raw slot documents.
type Backend interface {
	// ReadSlot returns the stored document. ok is false if the slot was
	// never written.
	ReadSlot(ctx context.Context, slot Slot) (data string, ok bool, err error)

	// WriteSlots stores every given slot atomically.
	WriteSlots(ctx context.Context, docs map[Slot]string) error
}
