package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/orange/internal/helpers"
	"github.com/joshua-takyi/orange/internal/middleware"
	"github.com/joshua-takyi/orange/internal/models"
	"github.com/joshua-takyi/orange/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) MarkOnboarded(ctx context.Context, userID string) error {
	return nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *models.User, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	const secret = "middleware-test-secret"
	user := &models.User{
		ID:    "user-1",
		Email: "priya@example.com",
		Role:  models.RoleCreator,
	}
	repo := &fakeUserRepo{users: map[string]*models.User{user.ID: user}}
	auth := services.NewAuthService(repo, secret)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AuthMiddleware(auth, logger))
	r.GET("/me", func(c *gin.Context) {
		v, _ := c.Get("user")
		got := v.(*models.User)
		c.JSON(http.StatusOK, gin.H{"id": got.ID})
	})

	token, err := helpers.GenerateToken(secret, user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return r, user, token
}

func TestAuthMiddleware(t *testing.T) {
	r, user, token := newAuthRouter(t)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), user.ID)
			}
		})
	}
}

func TestAuthMiddleware_DeletedAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const secret = "middleware-test-secret"
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	auth := services.NewAuthService(repo, secret)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.Use(middleware.AuthMiddleware(auth, logger))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	// A structurally valid token whose subject no longer exists.
	token, err := helpers.GenerateToken(secret, "gone", "gone@example.com", models.RoleCreator)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Generated when absent.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// Propagated when supplied.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get("X-Request-ID"))
}
