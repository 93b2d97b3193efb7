package state

import "slices"

// State is the process-wide application state.
type State struct {
	Users       []User
	CurrentUser *User
	Cart        []CartItem
	Orders      []Order
}

// New returns an empty state: no users, no session, empty cart, no orders.
func New() *State {
	return &State{
		Users:  []User{},
		Cart:   []CartItem{},
		Orders: []Order{},
	}
}

// Authenticated reports whether a session is active.
func (s *State) Authenticated() bool {
	return s.CurrentUser != nil
}

// UserByEmail returns the registered user with exactly this email.
func (s *State) UserByEmail(email string) (User, bool) {
	for _, u := range s.Users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// SetCurrentUser starts a session for u. The session holds its own copy.
func (s *State) SetCurrentUser(u User) {
	s.CurrentUser = &u
}

// CartIndexByName returns the index of the cart line with this name, or -1.
func (s *State) CartIndexByName(name string) int {
	return slices.IndexFunc(s.Cart, func(it CartItem) bool { return it.Name == name })
}

// CartIndexByID returns the index of the cart line with this id, or -1.
func (s *State) CartIndexByID(id string) int {
	return slices.IndexFunc(s.Cart, func(it CartItem) bool { return it.ID == id })
}

// ClearCart empties the cart.
func (s *State) ClearCart() {
	s.Cart = []CartItem{}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := &State{
		Users:  slices.Clone(s.Users),
		Cart:   slices.Clone(s.Cart),
		Orders: make([]Order, len(s.Orders)),
	}
	if c.Users == nil {
		c.Users = []User{}
	}
	if c.Cart == nil {
		c.Cart = []CartItem{}
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		c.CurrentUser = &u
	}
	for i, o := range s.Orders {
		o.Items = slices.Clone(o.Items)
		c.Orders[i] = o
	}
	return c
}
