// Package storefront is the single owner of the application state.
//
// A Storefront loads the four slots once through a Store, hands the same
// *state.State to the session, cart and order engines, and gives every
// engine the Store as its Saver, so each mutation is flushed before it
// returns. The catalog is read-only and shared.
//
// Storefront is not safe for concurrent use; it models one browser tab.
package storefront
