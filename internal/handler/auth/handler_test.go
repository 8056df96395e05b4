package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	authservice "github.com/vladimirahmad90-oss/AccountManagement/internal/service/auth"
	pkgauth "github.com/vladimirahmad90-oss/AccountManagement/pkg/auth"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
	"github.com/vladimirahmad90-oss/AccountManagement/pkg/security"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if u, ok := s.users[username]; ok {
		return u, nil
	}
	return nil, apperrors.NotFound("user")
}

func (s *stubUserRepo) List(ctx context.Context) ([]*model.User, error) { return nil, nil }

func (s *stubUserRepo) UpdatePassword(ctx context.Context, username, hash string) error { return nil }

func (s *stubUserRepo) Delete(ctx context.Context, username string) error { return nil }

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUserRepo{users: map[string]*model.User{
		"admin": {
			ID:           uuid.New(),
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
			Name:         "Administrator",
		},
	}}

	svc := authservice.NewService(repo, security.NewBcryptHasher(bcrypt.MinCost),
		pkgauth.NewTokenMaker("test-secret", time.Hour))

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postLogin(r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginEndpointSuccess(t *testing.T) {
	r := setupRouter(t)

	w := postLogin(r, gin.H{"username": "admin", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			User  model.User `json:"user"`
			Token string     `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "admin", resp.Data.User.Username)
	assert.NotEmpty(t, resp.Data.Token)

	// The password hash must never leave the server.
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestLoginEndpointWrongPassword(t *testing.T) {
	r := setupRouter(t)

	w := postLogin(r, gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginEndpointUnknownUser(t *testing.T) {
	r := setupRouter(t)

	w := postLogin(r, gin.H{"username": "ghost", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginEndpointMissingFields(t *testing.T) {
	r := setupRouter(t)

	w := postLogin(r, gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
