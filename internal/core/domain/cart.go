package domain

import "github.com/shopspring/decimal"

// CartLine is a copy of a CatalogItem taken when it was added to the cart.
// Later catalog edits never reach it.
type CartLine struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Cart is the ordered selection of the active customer. The same item may
// appear more than once.
type Cart struct {
	lines []CartLine
}

// AddLine appends a value copy of item.
func (c *Cart) AddLine(item CatalogItem) CartLine {
	line := CartLine{ID: item.ID, Name: item.Name, Price: item.Price}
	c.lines = append(c.lines, line)
	return line
}

// RemoveLine removes the first line whose id matches. Only one line goes per
// call even if several share the id. It reports whether a line was removed.
func (c *Cart) RemoveLine(id string) bool {
	for i, l := range c.lines {
		if l.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Subtotal sums all line prices.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Price)
	}
	return total
}

func (c *Cart) Clear() { c.lines = nil }

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
