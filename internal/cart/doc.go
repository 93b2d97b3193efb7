// Package cart adds, removes and re-counts cart lines.
//
// Lines are keyed by name: adding an item whose name is already in the
// cart increments that line's quantity, whatever its id or price. Every
// line in the cart satisfies price > 0 and quantity >= 1; a quantity change
// that would drop below 1 removes the line.
//
// Only signed-in users can add items. Removing and re-counting lines never
// fail on missing ids.
package cart
