package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/catalog"
	"github.com/sportshub/storefront/internal/repository"
)

// SeedIfEmpty loads the built-in catalog into empty category and
// product tables. Tables that already hold rows are left untouched.
func SeedIfEmpty(ctx context.Context, repos *repository.Repositories, logger *zap.Logger) error {
	count, err := repos.Category.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Categories already exist, skipping seed", zap.Int("count", count))
	} else {
		categories := catalog.FallbackCategories()
		if err := repos.Category.CreateBatch(ctx, categories); err != nil {
			return err
		}
		logger.Info("Seeded categories", zap.Int("count", len(categories)))
	}

	count, err = repos.Product.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Products already exist, skipping seed", zap.Int("count", count))
		return nil
	}
	products := catalog.FallbackProducts()
	if err := repos.Product.CreateBatch(ctx, products); err != nil {
		return err
	}
	logger.Info("Seeded products", zap.Int("count", len(products)))
	return nil
}
