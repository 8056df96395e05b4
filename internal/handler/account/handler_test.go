package account

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

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/service/account"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type stubAccountRepo struct {
	accounts map[string]*model.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*model.Account)}
}

func (s *stubAccountRepo) Create(ctx context.Context, a *model.Account) error {
	if _, ok := s.accounts[a.Email]; ok {
		return apperrors.Conflict("account with this email already exists")
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	s.accounts[a.Email] = a
	return nil
}

func (s *stubAccountRepo) CreateBatch(ctx context.Context, accounts []*model.Account) error {
	for _, a := range accounts {
		if err := s.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (s *stubAccountRepo) Get(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.NotFound("account")
}

func (s *stubAccountRepo) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	if a, ok := s.accounts[email]; ok {
		return a, nil
	}
	return nil, apperrors.NotFound("account")
}

func (s *stubAccountRepo) List(ctx context.Context, accountType string) ([]*model.Account, error) {
	var out []*model.Account
	for _, a := range s.accounts {
		if accountType == "" || a.Type == accountType {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAccountRepo) ListByPlatformAndType(ctx context.Context, platform, accountType string) ([]*model.Account, error) {
	return nil, nil
}

func (s *stubAccountRepo) ListByEmails(ctx context.Context, emails []string) ([]*model.Account, error) {
	var out []*model.Account
	for _, email := range emails {
		if a, ok := s.accounts[email]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAccountRepo) SearchByEmail(ctx context.Context, query string, limit int) ([]*model.Account, error) {
	return nil, nil
}

func (s *stubAccountRepo) Update(ctx context.Context, a *model.Account) error { return nil }

func (s *stubAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for email, a := range s.accounts {
		if a.ID == id {
			delete(s.accounts, email)
			return nil
		}
	}
	return apperrors.NotFound("account")
}

func setupRouter(repo *stubAccountRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(account.NewService(repo))

	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)
	h.RegisterAdminRoutes(api)
	return r
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAccountEndpoint(t *testing.T) {
	r := setupRouter(newStubAccountRepo())

	w := performJSON(r, http.MethodPost, "/api/v1/accounts", gin.H{
		"email":    "netflix1@mail.com",
		"password": "secret",
		"type":     "sharing",
		"platform": "NETFLIX",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string        `json:"status"`
		Data   model.Account `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "netflix1@mail.com", resp.Data.Email)
	assert.Len(t, resp.Data.Profiles, 20)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	r := setupRouter(repo)

	body := gin.H{
		"email":    "dup@mail.com",
		"password": "secret",
		"type":     "private",
		"platform": "DISNEY",
	}
	require.Equal(t, http.StatusCreated, performJSON(r, http.MethodPost, "/api/v1/accounts", body).Code)

	w := performJSON(r, http.MethodPost, "/api/v1/accounts", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAccountMissingFields(t *testing.T) {
	r := setupRouter(newStubAccountRepo())

	w := performJSON(r, http.MethodPost, "/api/v1/accounts", gin.H{"email": "x@mail.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAccountInvalidType(t *testing.T) {
	r := setupRouter(newStubAccountRepo())

	w := performJSON(r, http.MethodPost, "/api/v1/accounts", gin.H{
		"email":    "x@mail.com",
		"password": "secret",
		"type":     "premium",
		"platform": "NETFLIX",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailableMissingParams(t *testing.T) {
	r := setupRouter(newStubAccountRepo())

	w := performJSON(r, http.MethodGet, "/api/v1/accounts/available", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchMissingQuery(t *testing.T) {
	r := setupRouter(newStubAccountRepo())

	w := performJSON(r, http.MethodGet, "/api/v1/accounts/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUnknownAccount(t *testing.T) {
	r := setupRouter(newStubAccountRepo())

	w := performJSON(r, http.MethodDelete, "/api/v1/accounts/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteInvalidID(t *testing.T) {
	r := setupRouter(newStubAccountRepo())

	w := performJSON(r, http.MethodDelete, "/api/v1/accounts/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
