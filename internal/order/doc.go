// Package order turns the cart into order records.
//
// PlaceOrder validates in a fixed sequence and stops at the first failure:
//
//  1. a session is active
//  2. the cart has at least one line
//  3. a pickup time is given
//  4. the pickup time is a valid HH:MM clock time
//  5. its hour lies in the half-open interval [08, 20)
//
// A placed order owns a copy of the cart lines, so later cart changes never
// reach it. The live cart is emptied in the same flush that stores the order.
package order
