package store

import "github.com/sportshub/storefront/internal/domain"

// AddToCart adds one unit of product. If the product is already in
// the cart its quantity is incremented; the cart never holds two
// items for the same product id.
func (s *Store) AddToCart(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Product.ID == product.ID {
			s.cart[i].Quantity++
			s.persist(keyCart, s.cart)
			return
		}
	}

	s.cart = append(s.cart, domain.CartItem{
		ID:       s.ids.NewID(),
		Product:  product,
		Quantity: 1,
	})
	s.persist(keyCart, s.cart)
}

// RemoveFromCart removes the item for productID. Removing a product
// that is not in the cart is a no-op.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCartLocked(productID)
}

func (s *Store) removeFromCartLocked(productID string) {
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	s.persist(keyCart, s.cart)
}

// UpdateCartQuantity sets the quantity for productID. A quantity of
// zero or less removes the item. Unknown products are a no-op.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeFromCartLocked(productID)
		return
	}

	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			s.persist(keyCart, s.cart)
			return
		}
	}
}

// ClearCart empties the cart
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persist(keyCart, s.cart)
}

// Cart returns a copy of the cart items in insertion order
func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.cart...)
}

// CartCount returns the total number of units across all cart items
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, item := range s.cart {
		n += item.Quantity
	}
	return n
}

// CartTotal returns the cart value at current catalog prices
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.cart {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// AddToWishlist saves a product. Adding a product that is already
// saved is a no-op.
func (s *Store) AddToWishlist(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.wishlist {
		if item.Product.ID == product.ID {
			return
		}
	}

	s.wishlist = append(s.wishlist, domain.WishlistItem{
		ID:      s.ids.NewID(),
		Product: product,
	})
	s.persist(keyWishlist, s.wishlist)
}

// RemoveFromWishlist removes the saved product if present
func (s *Store) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.wishlist[:0]
	for _, item := range s.wishlist {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.wishlist = kept
	s.persist(keyWishlist, s.wishlist)
}

// IsInWishlist reports whether the product is saved
func (s *Store) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.wishlist {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// Wishlist returns a copy of the saved items in insertion order
func (s *Store) Wishlist() []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WishlistItem(nil), s.wishlist...)
}
