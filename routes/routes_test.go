package routes

import (
	"context"
	"net/http"
	"testing"
	"time"

	"inkwell/app/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	router := newTestRouter(t, seedPosts()...)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedHeader string
	}{
		{
			name:           "Welcome page",
			method:         "GET",
			path:           "/",
			expectedStatus: http.StatusOK,
			expectedHeader: "text/plain; charset=utf-8",
		},
		{
			name:           "GET posts",
			method:         "GET",
			path:           "/api/posts",
			expectedStatus: http.StatusOK,
			expectedHeader: "application/json",
		},
		{
			name:           "GET single post",
			method:         "GET",
			path:           "/api/posts/1",
			expectedStatus: http.StatusOK,
			expectedHeader: "application/json",
		},
		{
			name:           "GET search",
			method:         "GET",
			path:           "/api/posts/search?title=sourdough",
			expectedStatus: http.StatusOK,
			expectedHeader: "application/json",
		},
		{
			name:           "GET post comments",
			method:         "GET",
			path:           "/api/posts/1/comments",
			expectedStatus: http.StatusOK,
			expectedHeader: "application/json",
		},
		{
			name:           "OpenAPI document",
			method:         "GET",
			path:           "/api/openapi.json",
			expectedStatus: http.StatusOK,
			expectedHeader: "application/json",
		},
		{
			name:           "Docs page",
			method:         "GET",
			path:           "/api/docs",
			expectedStatus: http.StatusOK,
			expectedHeader: "text/html; charset=utf-8",
		},
		{
			name:           "Invalid post ID",
			method:         "GET",
			path:           "/api/posts/invalid",
			expectedStatus: http.StatusNotFound,
			expectedHeader: "text/plain; charset=utf-8",
		},
		{
			name:           "Method not allowed on collection",
			method:         "DELETE",
			path:           "/api/posts",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedHeader, w.Header().Get("Content-Type"))
		})
	}
}

func TestWelcome(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, "GET", "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to the Blog API. Use /api/posts to interact with the posts.\n", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestStartServer(t *testing.T) {
	t.Run("shuts down when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- StartServer(ctx, "127.0.0.1:0", http.NotFoundHandler())
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("server did not shut down after cancel")
		}
	})

	t.Run("reports listen errors", func(t *testing.T) {
		err := StartServer(context.Background(), "127.0.0.1:notaport", http.NotFoundHandler())
		assert.Error(t, err)
	})
}
