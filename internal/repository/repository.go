package repository

import (
	"context"

	"github.com/sportshub/storefront/internal/domain"
)

// ProductRepository stores catalog products
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Count(ctx context.Context) (int, error)
	CreateBatch(ctx context.Context, products []domain.Product) error
}

// CategoryRepository stores catalog categories
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Count(ctx context.Context) (int, error)
	CreateBatch(ctx context.Context, categories []domain.Category) error
}

// UserRepository stores registered users
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User, passwordHash string) error
}

// Repositories aggregates all repositories
type Repositories struct {
	Product  ProductRepository
	Category CategoryRepository
	User     UserRepository
}
