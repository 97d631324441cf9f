package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberhq/kindling/internal/config"
	"github.com/emberhq/kindling/internal/httpserver/middleware"
)

func tag(name string, order *[]string) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChain(t *testing.T) {
	t.Run("should apply middlewares outermost first", func(t *testing.T) {
		var order []string
		final := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			order = append(order, "handler")
		})

		chain := middleware.Chain(tag("first", &order), tag("second", &order))

		rec := httptest.NewRecorder()
		chain(final).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, []string{"first", "second", "handler"}, order)
	})
}

func TestBuildMiddlewareChain(t *testing.T) {
	t.Run("should stamp request id and answer CORS preflight", func(t *testing.T) {
		corsConfig := &config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Content-Type"},
		}

		chain := middleware.BuildMiddlewareChain(corsConfig)
		handler := chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/examples", nil)
		req.Header.Set("Origin", "http://example.com")
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
