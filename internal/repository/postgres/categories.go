package postgres

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/pkg/errors"
)

type categoryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB, logger *zap.Logger) *categoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name, slug, description, image_url, type FROM categories ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &c.Type); err != nil {
			r.logger.Error("Failed to scan category", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT id, name, slug, description, image_url, type FROM categories WHERE id = $1`

	var c domain.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &c.Type,
	)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "category", ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get category by ID", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM categories`).Scan(&count)
	return count, err
}

func (r *categoryRepository) CreateBatch(ctx context.Context, categories []domain.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, description, image_url, type)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range categories {
		_, err := tx.ExecContext(ctx, query, c.ID, c.Name, c.Slug, c.Description, c.ImageURL, c.Type)
		if err != nil {
			r.logger.Error("Failed to insert category", zap.String("id", c.ID), zap.Error(err))
			return err
		}
	}
	return tx.Commit()
}
