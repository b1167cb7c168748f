// Package store implements the session state container: the single
// source of truth for one shopper's cart, wishlist, orders, reviews
// and product cache. Every mutation is written through to a key-value
// store as the full serialized collection, and a fresh container
// reloads those collections at construction.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/pkg/ident"
	"github.com/sportshub/storefront/pkg/kv"
	"github.com/sportshub/storefront/pkg/retry"
)

// Persistence keys, one serialized collection per key.
const (
	keyCart     = "cart"
	keyWishlist = "wishlist"
	keyOrders   = "orders"
	keyReviews  = "reviews"
)

const refreshAttempts = 3

// Source supplies the remote product catalog
type Source interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

// Store holds the in-memory session state. In-memory state is
// authoritative; the key-value store is a durable snapshot.
type Store struct {
	mu              sync.Mutex
	products        []domain.Product
	cart            []domain.CartItem
	wishlist        []domain.WishlistItem
	orders          []domain.Order
	reviews         []domain.Review
	loadingProducts bool
	closed          bool

	storage kv.Store
	source  Source
	ids     ident.Generator
	logger  *zap.Logger
	now     func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a session store seeded from storage. The fallback
// catalog serves products until the source responds; source may be
// nil, in which case the fallback is permanent. The catalog refresh
// runs in the background and the store is usable immediately.
func New(storage kv.Store, source Source, fallback []domain.Product, ids ident.Generator, logger *zap.Logger) *Store {
	s := &Store{
		products: append([]domain.Product(nil), fallback...),
		storage:  storage,
		source:   source,
		ids:      ids,
		logger:   logger,
		now:      time.Now,
	}

	s.cart = loadCollection[domain.CartItem](s, keyCart)
	s.wishlist = loadCollection[domain.WishlistItem](s, keyWishlist)
	s.orders = loadCollection[domain.Order](s, keyOrders)
	s.reviews = loadCollection[domain.Review](s, keyReviews)

	if source != nil {
		ctx, cancel := context.WithCancel(context.Background())
		s.cancel = cancel
		s.done = make(chan struct{})
		s.loadingProducts = true
		go s.refreshProducts(ctx)
	}

	return s
}

// Close tears the store down. A catalog refresh still in flight is
// cancelled and any late result is discarded.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
}

// LoadingProducts reports whether the initial catalog refresh is
// still outstanding.
func (s *Store) LoadingProducts() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingProducts
}

func (s *Store) refreshProducts(ctx context.Context) {
	defer close(s.done)

	products, err := retry.DoWithResult(ctx, retry.Config{MaxAttempts: refreshAttempts},
		func() ([]domain.Product, error) {
			return s.source.Products(ctx)
		})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadingProducts = false

	if s.closed {
		return
	}
	if err != nil {
		s.logger.Warn("Catalog refresh failed, keeping fallback catalog", zap.Error(err))
		return
	}
	if len(products) == 0 {
		s.logger.Warn("Catalog source returned no products, keeping fallback catalog")
		return
	}

	s.products = products
	s.logger.Info("Catalog refreshed", zap.Int("products", len(products)))
}

// loadCollection reads one collection, treating an absent or
// unparsable value as an empty collection. Never fatal. Decoding is
// all-or-nothing: json.Unmarshal fills elements up to the first bad
// one, so a partially-decoded result must never reach the store.
func loadCollection[T any](s *Store, key string) []T {
	raw, ok := s.storage.Get(key)
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("Discarding unparsable persisted collection",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return items
}

// persist writes one collection in full. Called with s.mu held.
func (s *Store) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to serialize collection",
			zap.String("key", key), zap.Error(err))
		return
	}
	s.storage.Set(key, string(raw))
}
