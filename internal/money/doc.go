// Package money renders prices the way the menu and cart display them:
// ru-RU digit grouping, up to two fraction digits, and a ruble sign.
package money
