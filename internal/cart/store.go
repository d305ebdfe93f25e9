// Package cart is the in-memory shopping cart.
//
// A Store holds at most one entry per product ID and keeps entries in the
// order they were first added. Quantities are always >= 1; setting a quantity
// of zero or less removes the entry. No operation fails.
package cart

import (
	"slices"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

type Store struct {
	entries map[int64]*models.CartEntry
	order   []int64
}

func NewStore() *Store {
	return &Store{entries: make(map[int64]*models.CartEntry)}
}

// AddToCart increments the quantity of an existing entry or appends a new
// entry with quantity 1.
func (s *Store) AddToCart(product models.Product) {
	if entry, ok := s.entries[product.ID]; ok {
		entry.Quantity++
		return
	}

	s.entries[product.ID] = &models.CartEntry{Product: product, Quantity: 1}
	s.order = append(s.order, product.ID)
}

func (s *Store) RemoveFromCart(productID int64) {
	if _, ok := s.entries[productID]; !ok {
		return
	}

	delete(s.entries, productID)
	s.order = slices.DeleteFunc(s.order, func(id int64) bool { return id == productID })
}

// UpdateQuantity sets the quantity of an existing entry. It never creates an
// entry for an unknown product.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	if entry, ok := s.entries[productID]; ok {
		entry.Quantity = quantity
	}
}

func (s *Store) ClearCart() {
	clear(s.entries)
	s.order = s.order[:0]
}

// TotalPrice is unrounded; formatting is left to the caller.
func (s *Store) TotalPrice() float64 {
	var total float64

	for _, id := range s.order {
		total += s.entries[id].Subtotal()
	}

	return total
}

func (s *Store) TotalItems() int {
	var total int

	for _, entry := range s.entries {
		total += entry.Quantity
	}

	return total
}

// Entries returns a copy of the cart contents in insertion order.
func (s *Store) Entries() []models.CartEntry {
	out := make([]models.CartEntry, 0, len(s.order))

	for _, id := range s.order {
		out = append(out, *s.entries[id])
	}

	return out
}

func (s *Store) Entry(productID int64) (models.CartEntry, bool) {
	entry, ok := s.entries[productID]
	if !ok {
		return models.CartEntry{}, false
	}

	return *entry, true
}

func (s *Store) Len() int {
	return len(s.order)
}
