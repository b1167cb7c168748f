package store

import (
	"strings"

	"github.com/sportshub/storefront/internal/domain"
)

// PlaceOrder finalizes a draft order: it assigns an id, a tracking
// number and creation timestamps, then prepends the order so the list
// stays most-recent-first. Item prices are whatever the caller
// snapshotted into the draft; later catalog changes never touch them.
// The cart is left alone — checkout clears it separately.
func (s *Store) PlaceOrder(draft domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	order := draft
	order.ID = s.ids.NewID()
	order.TrackingNumber = s.trackingNumber()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	order.Items = append([]domain.OrderItem(nil), draft.Items...)
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = s.ids.NewID()
		}
	}

	s.orders = append([]domain.Order{order}, s.orders...)
	s.persist(keyOrders, s.orders)
	return order
}

func (s *Store) trackingNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(s.ids.NewID(), "-", ""))
	if len(suffix) > 12 {
		suffix = suffix[:12]
	}
	return "TRK" + suffix
}

// Orders returns a copy of the orders, most recent first
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Order(nil), s.orders...)
}

// AddReview records a review draft, assigning it an id and creation
// time, and prepends it so reviews stay most-recent-first.
func (s *Store) AddReview(draft domain.Review) domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	review := draft
	review.ID = s.ids.NewID()
	review.CreatedAt = s.now()

	s.reviews = append([]domain.Review{review}, s.reviews...)
	s.persist(keyReviews, s.reviews)
	return review
}

// ProductReviews returns the reviews for one product, most recent
// first. The result is a snapshot, not a live view.
func (s *Store) ProductReviews(productID string) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.Review
	for _, review := range s.reviews {
		if review.ProductID == productID {
			matched = append(matched, review)
		}
	}
	return matched
}

// Reviews returns a copy of all reviews, most recent first
func (s *Store) Reviews() []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Review(nil), s.reviews...)
}
