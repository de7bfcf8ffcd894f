package store

import "quicklink/models"

// AddToCart appends the item to the cart, or, if a line with the same id
// already exists, increments that line's quantity by the added amount. The
// cart never holds two lines with the same id.
func (s *Store) AddToCart(item models.CartItem) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == item.ID {
			s.cart[i].Quantity += item.Quantity
			return snapshot(s.cart)
		}
	}
	s.cart = append(s.cart, item)
	return snapshot(s.cart)
}

// RemoveFromCart drops the line with the given id. Absent ids are ignored.
func (s *Store) RemoveFromCart(id string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			break
		}
	}
	return snapshot(s.cart)
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// Cart returns a snapshot of the cart in insertion order.
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.cart)
}
