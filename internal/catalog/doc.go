// Package catalog serves the read-only café menu.
//
// The menu is YAML. Before use it is checked against an embedded CUE schema
// (non-empty id, name and image, price > 0, at least one item) and item ids
// must be unique. Names and category keys are NFC-normalized so that
// visually identical Cyrillic strings compare equal.
//
// The built-in menu is embedded; Load reads a replacement from disk.
package catalog
