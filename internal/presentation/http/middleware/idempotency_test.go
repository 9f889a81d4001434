package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/billify/billify-api/internal/domain/entity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newMemIdempotencyRepo() *memIdempotencyRepo {
	return &memIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *memIdempotencyRepo) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	ikey, ok := r.keys[key]
	if !ok || ikey.UserID != userID {
		return nil, nil
	}
	return ikey, nil
}

func (r *memIdempotencyRepo) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	r.keys[ikey.Key] = ikey
	return nil
}

func (r *memIdempotencyRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

func idempotencyTestRouter(repo *memIdempotencyRepo, userID uuid.UUID, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkout",
		func(c *gin.Context) { c.Set("user_id", userID) },
		Idempotency(IdempotencyConfig{Repo: repo}),
		func(c *gin.Context) {
			*calls++
			c.JSON(201, gin.H{"success": true, "calls": *calls})
		})
	return router
}

func TestIdempotencyWithoutHeaderPassesThrough(t *testing.T) {
	repo := newMemIdempotencyRepo()
	var calls int
	router := idempotencyTestRouter(repo, uuid.New(), &calls)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader("{}"))
		router.ServeHTTP(w, req)
		assert.Equal(t, 201, w.Code)
	}

	// No header means no caching: the handler runs every time.
	assert.Equal(t, 2, calls)
	assert.Empty(t, repo.keys)
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	repo := newMemIdempotencyRepo()
	var calls int
	router := idempotencyTestRouter(repo, uuid.New(), &calls)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	router.ServeHTTP(first, req)
	require.Equal(t, 201, first.Code)
	require.Equal(t, 1, calls)

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	router.ServeHTTP(second, req)

	assert.Equal(t, 201, second.Code)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}
