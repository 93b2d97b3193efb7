// Package state holds the storefront's data model and the single
// application-state value that the engines mutate.
//
// There are four collections, each persisted as one slot:
//   - Users: the append-only user registry (email is the unique key)
//   - CurrentUser: the active session, or nil
//   - Cart: ordered cart lines; Name is the de-duplication key
//   - Orders: immutable order records with a snapshot of the cart
//
// A State is owned by exactly one storefront. Engines receive a pointer to
// it and must call Saver.SaveAll after every mutation so durable storage
// never lags behind memory.
//
// SanitizeCart is the load-time repair step: cart lines that violate the
// line invariant (id, name and image present; price > 0; quantity >= 1) are
// dropped rather than reported.
package state
