package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("X-API-Key", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })(c)
	require.NoError(t, err)
	return rec, c
}

func TestAPIKeyMiddleware_DisabledWithoutKeys(t *testing.T) {
	rec, c := serve(t, APIKeyMiddleware([]string{"", "  "}), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, ok := APIKeyFromCtx(c)
	assert.False(t, ok)
}

func TestAPIKeyMiddleware_StoresAcceptedKey(t *testing.T) {
	rec, c := serve(t, APIKeyMiddleware([]string{"k1"}), " k1 ")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	key, ok := APIKeyFromCtx(c)
	assert.True(t, ok)
	assert.Equal(t, "k1", key)
}

func TestAPIKeyMiddleware_Rejects(t *testing.T) {
	rec, _ := serve(t, APIKeyMiddleware([]string{"k1"}), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = serve(t, APIKeyMiddleware([]string{"k1"}), "k2")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimitMiddleware_AllowsWithoutRedis(t *testing.T) {
	rec, _ := serve(t, RateLimitMiddleware(RateLimitConfig{RPS: 1}), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimitMiddleware_FailsOpenOnRedisError(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	mw := RateLimitMiddleware(RateLimitConfig{Redis: rdb, RPS: 1})
	for i := 0; i < 3; i++ {
		rec, _ := serve(t, mw, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
