package store

import (
	"sort"
	"strings"

	"github.com/sportshub/storefront/internal/domain"
)

const defaultRecommendLimit = 8

// Products returns a copy of the current product cache
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

// Product returns the cached product with the given id
func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// SearchProducts returns every product whose name or description
// contains the query, case-insensitively. An empty query matches all
// products.
func (s *Store) SearchProducts(query string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var matched []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// RecommendedProducts returns the top products by rating. Ties keep
// their original catalog order so the listing is stable between
// calls. A limit of zero or less means the default of 8.
func (s *Store) RecommendedProducts(limit int) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	ranked := append([]domain.Product(nil), s.products...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
