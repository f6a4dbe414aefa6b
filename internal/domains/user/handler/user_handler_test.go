package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domains/user"
	"bookstore-api/internal/domains/user/service"
)

type memoryRepo struct {
	users   []user.User
	failErr error
}

func (m *memoryRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	created := user.User{
		ID:        uuid.New(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: time.Now().UTC(),
	}
	m.users = append(m.users, created)
	return &created, nil
}

func newTestRouter(repo user.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(service.NewUserService(repo))

	router := gin.New()
	router.POST("/users/create", h.Create)
	return router
}

func doRequest(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/users/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReturnsUserWithID(t *testing.T) {
	router := newTestRouter(&memoryRepo{})

	w := doRequest(router, `{"name":"renato","email":"renato@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "renato", created["name"])
	assert.Equal(t, "renato@example.com", created["email"])
	assert.NotEmpty(t, created["id"])
}

func TestCreateNormalizesEmail(t *testing.T) {
	repo := &memoryRepo{}
	router := newTestRouter(repo)

	w := doRequest(router, `{"name":"renato","email":"Renato@Example.COM"}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, repo.users, 1)
	assert.Equal(t, "renato@example.com", repo.users[0].Email)
}

func TestCreateRejectsInvalidEmail(t *testing.T) {
	repo := &memoryRepo{}
	router := newTestRouter(repo)

	w := doRequest(router, `{"name":"renato","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A rejected request must not create a row.
	assert.Empty(t, repo.users)
}

func TestCreateRejectsMissingName(t *testing.T) {
	repo := &memoryRepo{}
	router := newTestRouter(repo)

	w := doRequest(router, `{"email":"renato@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.users)
}

func TestCreateStoreFailure(t *testing.T) {
	router := newTestRouter(&memoryRepo{failErr: user.ErrStore})

	w := doRequest(router, `{"name":"renato","email":"renato@example.com"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["error"]["code"])
}
