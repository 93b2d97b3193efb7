package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CategoryAll selects every menu item.
const CategoryAll = "all"

// MenuItem is one entry of the menu.
type MenuItem struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Price      float64  `json:"price" yaml:"price"`
	Image      string   `json:"image" yaml:"image"`
	Categories []string `json:"categories" yaml:"categories"`
}

// HasCategory reports whether the item is tagged with category.
func (m MenuItem) HasCategory(category string) bool {
	return slices.Contains(m.Categories, category)
}

// Catalog is an immutable, validated menu.
type Catalog struct {
	items []MenuItem
	byID  map[string]int
}

// Items returns every menu item in menu order.
func (c *Catalog) Items() []MenuItem {
	return cloneItems(c.items)
}

// FilterByCategory returns the items tagged with category, in menu order.
// CategoryAll returns every item; an unknown category returns none.
func (c *Catalog) FilterByCategory(category string) []MenuItem {
	category = normalize(category)
	if category == CategoryAll {
		return c.Items()
	}
	out := make([]MenuItem, 0)
	for _, m := range c.items {
		if m.HasCategory(category) {
			out = append(out, cloneItem(m))
		}
	}
	return out
}

// Lookup returns the item with this id.
func (c *Catalog) Lookup(id string) (MenuItem, bool) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return MenuItem{}, false
	}
	return cloneItem(c.items[i]), true
}

// Categories returns the distinct category keys in first-seen order,
// always starting with CategoryAll.
func (c *Catalog) Categories() []string {
	out := []string{CategoryAll}
	for _, m := range c.items {
		for _, cat := range m.Categories {
			if !slices.Contains(out, cat) {
				out = append(out, cat)
			}
		}
	}
	return out
}

// Len returns the number of menu items.
func (c *Catalog) Len() int {
	return len(c.items)
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func cloneItem(m MenuItem) MenuItem {
	m.Categories = slices.Clone(m.Categories)
	return m
}

func cloneItems(items []MenuItem) []MenuItem {
	out := make([]MenuItem, len(items))
	for i, m := range items {
		out[i] = cloneItem(m)
	}
	return out
}
