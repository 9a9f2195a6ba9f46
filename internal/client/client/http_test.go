package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, routes func(r chi.Router), opts ...Option) *HTTPClient {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api", routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL+"/api", opts...)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_InvalidURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.com")
	require.Error(t, err)

	_, err = NewHTTPClient("://bad")
	require.Error(t, err)

	c, err := NewHTTPClient("http://localhost:5001/api/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5001/api", c.BaseURL())
}

func TestDo_SetsHeaders(t *testing.T) {
	var gotAuth, gotReqID, gotCT string
	c := newTestClient(t, func(r chi.Router) {
		r.Post("/news/{id}/like", func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotReqID = r.Header.Get("X-Request-ID")
			gotCT = r.Header.Get("Content-Type")
			writeJSON(w, http.StatusOK, map[string]any{"liked": true})
		})
	})
	c.newID = func() string { return "req-1" }

	res, err := c.LikeArticle(context.Background(), Credentials{Token: "abc"}, 7)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Nil(t, res.LikesCount)

	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "req-1", gotReqID)
	assert.Empty(t, gotCT)
}

func TestDo_AnonymousSendsNoAuthorization(t *testing.T) {
	var hadAuth bool
	c := newTestClient(t, func(r chi.Router) {
		r.Get("/news/categories", func(w http.ResponseWriter, r *http.Request) {
			_, hadAuth = r.Header["Authorization"]
			writeJSON(w, http.StatusOK, map[string]any{"categories": []any{}})
		})
	})

	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cats)
	assert.False(t, hadAuth)
}

func TestDo_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     any
		sentinel error
		message  string
	}{
		{"401 error key", 401, map[string]string{"error": "Token has expired"}, ErrUnauthorized, "Token has expired"},
		{"401 msg key", 401, map[string]string{"msg": "Missing Authorization Header"}, ErrUnauthorized, "Missing Authorization Header"},
		{"403", 403, map[string]string{"error": "Premium subscription required"}, ErrForbidden, "Premium subscription required"},
		{"404", 404, map[string]string{"error": "Article not found"}, ErrNotFound, "Article not found"},
		{"400", 400, map[string]string{"error": "Search query is required"}, ErrValidation, "Search query is required"},
		{"422", 422, map[string]string{"msg": "Not enough segments"}, ErrValidation, "Not enough segments"},
		{"500 no body", 500, nil, ErrServer, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(r chi.Router) {
				r.Get("/news/{id}", func(w http.ResponseWriter, r *http.Request) {
					if tt.body == nil {
						w.WriteHeader(tt.status)
						return
					}
					writeJSON(w, tt.status, tt.body)
				})
			})

			_, err := c.GetArticle(context.Background(), Anonymous, 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, "/news/1", apiErr.Path)
		})
	}
}

func TestDo_NetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url + "/api")
	require.NoError(t, err)

	_, err = c.LikeArticle(context.Background(), Credentials{Token: "t"}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, IsTokenRejection(err))
	assert.Equal(t, "Cannot connect to server", UserMessage(err, ""))
}

func TestDo_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(r chi.Router) {
		r.Get("/news/categories", func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Categories(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDo_MalformedResponses(t *testing.T) {
	c := newTestClient(t, func(r chi.Router) {
		r.Get("/news", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"page": 1})
		})
		r.Get("/news/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>oops</html>"))
		})
		r.Post("/news/{id}/save", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"message": "ok"})
		})
	})
	ctx := context.Background()

	_, err := c.ListNews(ctx, Anonymous, models.ListParams{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.ErrorContains(t, err, `"articles"`)

	_, err = c.GetArticle(ctx, Anonymous, 3)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = c.SaveArticle(ctx, Credentials{Token: "t"}, 3)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestWithRateLimit_Paces(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(r chi.Router) {
		r.Get("/news/categories", func(w http.ResponseWriter, r *http.Request) {
			calls++
			writeJSON(w, http.StatusOK, map[string]any{"categories": []any{}})
		})
	}, WithRateLimit(20))
	require.NotNil(t, c.limiter)

	start := time.Now()
	for i := 0; i < 25; i++ {
		_, err := c.Categories(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 25, calls)
	// burst of 20, then 5 more at 20/s
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}

func TestWithRateLimit_ZeroDisables(t *testing.T) {
	c, err := NewHTTPClient("http://localhost/api", WithRateLimit(0))
	require.NoError(t, err)
	assert.Nil(t, c.limiter)
}

func TestPing(t *testing.T) {
	c := newTestClient(t, func(r chi.Router) {
		r.Get("/news/categories", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "nope"})
		})
	})
	require.NoError(t, c.Ping(context.Background()))

	down := newTestClient(t, func(r chi.Router) {
		r.Get("/news/categories", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
	})
	err := down.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServer))
}
