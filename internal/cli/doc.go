// Package cli is the ontaste command tree.
//
// The CLI stands in for the storefront's view layer: it reads arguments,
// calls one storefront operation and renders the result as text or JSON.
// State lives in a SQLite file (--db), so a session started by "login"
// persists across invocations, just as the browser kept it in local
// storage.
//
// Typed storefront errors are rendered with their code and a customer
// message and exit with ExitFailure. Environment problems (unreadable
// database, invalid menu file, failed flush) exit with ExitCommandError.
package cli
