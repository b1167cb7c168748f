package postgres

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/pkg/errors"
)

type productRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB, logger *zap.Logger) *productRepository {
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

const productColumns = `id, category_id, name, description, price, original_price, image_url, rating, review_count, stock, type`

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.logger.Error("Failed to scan product", zap.Error(err))
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "product", ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get product by ID", zap.Error(err))
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM products`).Scan(&count)
	return count, err
}

func (r *productRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range products {
		var originalPrice sql.NullFloat64
		if p.OriginalPrice > 0 {
			originalPrice = sql.NullFloat64{Float64: p.OriginalPrice, Valid: true}
		}
		_, err := tx.ExecContext(ctx, query,
			p.ID, p.CategoryID, p.Name, p.Description, p.Price,
			originalPrice, p.ImageURL, p.Rating, p.ReviewCount, p.Stock, p.Type,
		)
		if err != nil {
			r.logger.Error("Failed to insert product", zap.String("id", p.ID), zap.Error(err))
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var product domain.Product
	var originalPrice sql.NullFloat64

	err := row.Scan(
		&product.ID,
		&product.CategoryID,
		&product.Name,
		&product.Description,
		&product.Price,
		&originalPrice,
		&product.ImageURL,
		&product.Rating,
		&product.ReviewCount,
		&product.Stock,
		&product.Type,
	)
	if err != nil {
		return domain.Product{}, err
	}

	if originalPrice.Valid {
		product.OriginalPrice = originalPrice.Float64
	}
	return product, nil
}
