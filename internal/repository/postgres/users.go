package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/pkg/errors"
)

type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	query := `
		SELECT id, email, password_hash, full_name, avatar_url, theme, loyalty_points
		FROM users
		WHERE email = $1
	`

	var user domain.User
	var passwordHash string
	var avatarURL sql.NullString

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&passwordHash,
		&user.FullName,
		&avatarURL,
		&user.Theme,
		&user.LoyaltyPoints,
	)
	if err == sql.ErrNoRows {
		return nil, "", &errors.ErrNotFound{Resource: "user", ID: email}
	}
	if err != nil {
		r.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, "", err
	}

	if avatarURL.Valid {
		user.AvatarURL = avatarURL.String
	}
	return &user, passwordHash, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, full_name, avatar_url, theme, loyalty_points
		FROM users
		WHERE id = $1
	`

	var user domain.User
	var avatarURL sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&avatarURL,
		&user.Theme,
		&user.LoyaltyPoints,
	)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "user", ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get user by ID", zap.Error(err))
		return nil, err
	}

	if avatarURL.Valid {
		user.AvatarURL = avatarURL.String
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User, passwordHash string) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, avatar_url, theme, loyalty_points)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Theme == "" {
		user.Theme = "light"
	}

	var avatarURL sql.NullString
	if user.AvatarURL != "" {
		avatarURL = sql.NullString{String: user.AvatarURL, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		passwordHash,
		user.FullName,
		avatarURL,
		user.Theme,
		user.LoyaltyPoints,
	)
	if err != nil {
		r.logger.Error("Failed to create user", zap.Error(err))
		return err
	}
	return nil
}
