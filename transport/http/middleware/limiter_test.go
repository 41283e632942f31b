package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/cache"
	"frontdesk/transport/http/middleware"

	"github.com/stretchr/testify/assert"
)

func newLimited(maxRequests int) http.Handler {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewMemoryCache(mocks.NewOtel()))

	return app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func serve(handler http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "10.0.0.7:52100"

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestRateLimit_BlocksAfterMax(t *testing.T) {
	handler := newLimited(2)

	assert.Equal(t, http.StatusOK, serve(handler, "/v1/rooms", "").Code)

	rec := serve(handler, "/v1/rooms", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusTooManyRequests, serve(handler, "/v1/rooms", "").Code)
}

func TestRateLimit_GuestSearchIsNotCounted(t *testing.T) {
	handler := newLimited(1)

	for range 5 {
		assert.Equal(t, http.StatusOK, serve(handler, "/v1/wizards/w1/guests/search", "").Code)
	}

	assert.Equal(t, http.StatusOK, serve(handler, "/v1/rooms", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(handler, "/v1/rooms", "").Code)
}

func TestRateLimit_CountsPerOperator(t *testing.T) {
	handler := newLimited(1)

	assert.Equal(t, http.StatusOK, serve(handler, "/v1/rooms", "desk-a").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(handler, "/v1/rooms", "desk-a").Code)

	// same address, another operator
	assert.Equal(t, http.StatusOK, serve(handler, "/v1/rooms", "desk-b").Code)
}
