// Package catalog talks to the remote catalog and auth API and ships
// the built-in fallback catalog used when the remote is unreachable.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/pkg/errors"
)

// Client is an HTTP client for the storefront API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a catalog client. baseURL points at the API root,
// e.g. http://localhost:4000/api.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// AuthResponse is the payload returned by login and register
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

type apiMessage struct {
	Message string `json:"message"`
}

// Products fetches the product catalog. An empty list is a valid
// response and means "no override" to the session store.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories fetches the category list
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Login exchanges credentials for a bearer token. Bad credentials
// surface as *errors.ErrUnauthorized, never as a fatal condition.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.auth(ctx, "/auth/login", credentials{Email: email, Password: password})
}

// Register creates an account. A taken email surfaces as
// *errors.ErrConflict, missing fields as *errors.ErrValidation.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (*AuthResponse, error) {
	return c.auth(ctx, "/auth/register", credentials{Email: email, Password: password, FullName: fullName})
}

// Profile fetches the user behind a bearer token
func (c *Client) Profile(ctx context.Context, token string) (*domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var user domain.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Health checks the API liveness endpoint
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	var status struct {
		Status string `json:"status"`
	}
	return c.do(req, &status)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) auth(ctx context.Context, path string, creds credentials) (*AuthResponse, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp AuthResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func statusError(status int, body []byte) error {
	var msg apiMessage
	_ = json.Unmarshal(body, &msg)
	if msg.Message == "" {
		msg.Message = http.StatusText(status)
	}

	switch status {
	case http.StatusUnauthorized:
		return &errors.ErrUnauthorized{Message: msg.Message}
	case http.StatusConflict:
		return &errors.ErrConflict{Message: msg.Message}
	case http.StatusBadRequest:
		return &errors.ErrValidation{Message: msg.Message}
	case http.StatusNotFound:
		return &errors.ErrNotFound{Message: msg.Message}
	default:
		return fmt.Errorf("api error: status %d, body: %s", status, string(body))
	}
}
