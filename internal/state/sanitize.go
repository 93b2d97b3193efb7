package state

import "math"

// ValidCartItem reports whether it satisfies the cart line invariant.
func ValidCartItem(it CartItem) bool {
	return it.ID != "" &&
		it.Name != "" &&
		it.Image != "" &&
		ValidPrice(it.Price) &&
		it.Quantity > 0 &&
		!math.IsInf(it.Subtotal(), 0)
}

// ValidPrice reports whether p is a finite amount greater than zero.
func ValidPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p > 0
}

// SanitizeCart returns the lines of items that satisfy the cart line
// invariant, in their original order, and how many lines were dropped.
// A line that would make the running total infinite is dropped too.
// The input slice is not modified.
func SanitizeCart(items []CartItem) ([]CartItem, int) {
	kept := make([]CartItem, 0, len(items))
	var total float64
	for _, it := range items {
		if !ValidCartItem(it) || math.IsInf(total+it.Subtotal(), 0) {
			continue
		}
		total += it.Subtotal()
		kept = append(kept, it)
	}
	return kept, len(items) - len(kept)
}
