// Package store is the persistence adapter for the storefront state.
//
// State is kept in four named slots (users, currentUser, cart, orders), each
// holding one JSON document in the same layout the browser storefront used.
//
// # Guarantees
//
//   - Load never fails. A slot that is missing, unreadable or malformed
//     yields its empty default; cart entries are decoded one by one and then
//     passed through state.SanitizeCart, so one bad line never costs the rest.
//   - SaveAll writes all four slots or none of them. Any failure is reported
//     as a single *PersistError with code WRITE_FAILED.
//
// # Backends
//
//   - SQLite: a durable single-file database (one row per slot, written in
//     one transaction). WAL mode, synchronous=NORMAL, busy_timeout=5000.
//   - Memory: an in-process map used by tests, with write-failure injection.
package store
