// Package ids generates record identifiers for users, cart items and orders.
//
// Production code uses UUIDv7Generator, whose ids embed a millisecond
// timestamp and therefore sort by creation time. Tests use FixedGenerator or
// SequenceGenerator so that stored state and golden output are reproducible.
package ids
