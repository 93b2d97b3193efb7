// Package session registers users and tracks the single active session.
//
// Passwords are stored and compared as plain text. There is no trust
// boundary behind the storefront, so this is an accepted simplification
// rather than an oversight.
//
// Logout also empties the cart: cart contents never survive a session.
package session
