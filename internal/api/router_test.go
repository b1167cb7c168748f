package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sportshub/storefront/internal/api"
	"github.com/sportshub/storefront/internal/config"
	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/internal/repository"
	"github.com/sportshub/storefront/internal/service"
	"github.com/sportshub/storefront/pkg/errors"
	"github.com/sportshub/storefront/pkg/ident"
)

type stubProductRepo struct {
	products []domain.Product
}

func (r *stubProductRepo) List(context.Context) ([]domain.Product, error) {
	return r.products, nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "product", ID: id}
}

func (r *stubProductRepo) Count(context.Context) (int, error) {
	return len(r.products), nil
}

func (r *stubProductRepo) CreateBatch(_ context.Context, products []domain.Product) error {
	r.products = append(r.products, products...)
	return nil
}

type stubCategoryRepo struct {
	categories []domain.Category
}

func (r *stubCategoryRepo) List(context.Context) ([]domain.Category, error) {
	return r.categories, nil
}

func (r *stubCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return &r.categories[i], nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "category", ID: id}
}

func (r *stubCategoryRepo) Count(context.Context) (int, error) {
	return len(r.categories), nil
}

func (r *stubCategoryRepo) CreateBatch(_ context.Context, categories []domain.Category) error {
	r.categories = append(r.categories, categories...)
	return nil
}

type stubUserRepo struct {
	users  map[string]*domain.User
	hashes map[string]string
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, string, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, "", &errors.ErrNotFound{Resource: "user", ID: email}
	}
	return user, r.hashes[email], nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "user", ID: id}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User, passwordHash string) error {
	if user.ID == "" {
		user.ID = "u-1"
	}
	r.users[user.Email] = user
	r.hashes[user.Email] = passwordHash
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repos := &repository.Repositories{
		Product: &stubProductRepo{products: []domain.Product{
			{ID: "p-1", CategoryID: "2", Name: "Cricket Bat", Price: 189.99, Rating: 4.8, Type: domain.ProductTypeEquipment},
		}},
		Category: &stubCategoryRepo{categories: []domain.Category{
			{ID: "2", Name: "Cricket", Slug: "cricket", Type: domain.CategoryTypeOutdoor},
		}},
		User: &stubUserRepo{
			users: map[string]*domain.User{
				"asha@example.com": {ID: "u-9", Email: "asha@example.com", FullName: "Asha Rao", Theme: "light"},
			},
			hashes: map[string]string{"asha@example.com": string(hash)},
		},
	}

	auth := service.NewAuthService(repos, &ident.Sequential{}, zap.NewNop())
	cfg := &config.Config{Environment: "test"}
	return api.NewRouter(cfg, repos, auth, zap.NewNop())
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("List", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/products", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var products []domain.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(t, products, 1)
		assert.Equal(t, "p-1", products[0].ID)
	})

	t.Run("GetByID", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/products/p-1", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/products/p-404", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCategoryEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "cricket", categories[0].Slug)
}

func TestAuthEndpoints(t *testing.T) {

	t.Run("LoginSuccess", func(t *testing.T) {
		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
			`{"email":"asha@example.com","password":"s3cret"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Token string      `json:"token"`
			User  domain.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "u-9", resp.User.ID)
	})

	t.Run("LoginBadCredentials", func(t *testing.T) {
		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
			`{"email":"asha@example.com","password":"wrong"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("RegisterMissingFields", func(t *testing.T) {
		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
			`{"email":"new@example.com"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("RegisterConflict", func(t *testing.T) {
		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
			`{"email":"asha@example.com","password":"pw","fullName":"Other"}`, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("RegisterThenProfile", func(t *testing.T) {
		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
			`{"email":"new@example.com","password":"pw","fullName":"New User"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		header := http.Header{}
		header.Set("Authorization", "Bearer "+resp.Token)
		profileRec := doJSON(t, router, http.MethodGet, "/api/auth/profile", "", header)
		require.Equal(t, http.StatusOK, profileRec.Code)

		var user domain.User
		require.NoError(t, json.Unmarshal(profileRec.Body.Bytes(), &user))
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("ProfileWithoutToken", func(t *testing.T) {
		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodGet, "/api/auth/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
