package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/internal/repository"
	"github.com/sportshub/storefront/pkg/errors"
	"github.com/sportshub/storefront/pkg/ident"
)

const bcryptCost = 10

type AuthService struct {
	repos  *repository.Repositories
	ids    ident.Generator
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]string // token -> user id
}

// NewAuthService creates a new auth service. Tokens are opaque and
// live for the lifetime of the process.
func NewAuthService(repos *repository.Repositories, ids ident.Generator, logger *zap.Logger) *AuthService {
	return &AuthService{
		repos:    repos,
		ids:      ids,
		logger:   logger,
		sessions: make(map[string]string),
	}
}

// AuthResult carries a fresh token and the authenticated user
type AuthResult struct {
	Token string
	User  domain.User
}

// Register creates an account and signs the user in
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" || fullName == "" {
		return nil, &errors.ErrValidation{Message: "Missing fields"}
	}

	if _, _, err := s.repos.User.GetByEmail(ctx, email); err == nil {
		return nil, &errors.ErrConflict{Message: "Email already registered"}
	} else if _, ok := err.(*errors.ErrNotFound); !ok {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    email,
		FullName: fullName,
		Theme:    "light",
	}
	if err := s.repos.User.Create(ctx, user, string(hash)); err != nil {
		return nil, err
	}

	return s.startSession(*user), nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, passwordHash, err := s.repos.User.GetByEmail(ctx, email)
	if err != nil {
		if _, ok := err.(*errors.ErrNotFound); ok {
			return nil, &errors.ErrUnauthorized{Message: "Invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return nil, &errors.ErrUnauthorized{Message: "Invalid credentials"}
	}

	return s.startSession(*user), nil
}

// UserForToken resolves a bearer token to its user
func (s *AuthService) UserForToken(ctx context.Context, token string) (*domain.User, error) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, &errors.ErrUnauthorized{Message: "Invalid token"}
	}

	return s.repos.User.GetByID(ctx, userID)
}

// Logout invalidates a token. Unknown tokens are a no-op.
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *AuthService) startSession(user domain.User) *AuthResult {
	token := s.ids.NewID()
	s.mu.Lock()
	s.sessions[token] = user.ID
	s.mu.Unlock()
	return &AuthResult{Token: token, User: user}
}
