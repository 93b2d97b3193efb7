package state

import "time"

// User is a registered customer. Users are created on registration and never
// changed or deleted.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Password         string    `json:"password"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// CartItem is one line of the cart.
type CartItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Image    string    `json:"image"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// Subtotal returns Price * Quantity.
func (it CartItem) Subtotal() float64 {
	return it.Price * float64(it.Quantity)
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// StatusProcessing is the state every order is placed in. Nothing in the
// storefront moves an order past it.
const StatusProcessing OrderStatus = "processing"

// Label returns the customer-facing name of the status.
func (s OrderStatus) Label() string {
	switch s {
	case StatusProcessing:
		return "В обработке"
	default:
		return string(s)
	}
}

// Order is a placed order. Items is a snapshot taken at placement time and
// shares no memory with the live cart.
type Order struct {
	ID         string      `json:"id"`
	UserEmail  string      `json:"userEmail"`
	Items      []CartItem  `json:"items"`
	Total      float64     `json:"total"`
	PickupTime string      `json:"pickupTime"`
	Date       string      `json:"date"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// DateLayout formats Order.Date the way the ru-RU locale prints a short date.
const DateLayout = "02.01.2006"
