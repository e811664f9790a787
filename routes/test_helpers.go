package routes

import (
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/app/models"
	"inkwell/app/services"
	"inkwell/app/store"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, seed ...models.Post) *mux.Router {
	st, err := store.NewBadgerStoreInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	if len(seed) > 0 {
		require.NoError(t, st.Save(seed))
	}

	return SetupRoutes(services.NewPostService(st))
}

func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedPosts() []models.Post {
	return []models.Post{
		{
			ID:      1,
			Title:   "Sourdough basics",
			Content: "Start with a lively starter.",
			Author:  "Ada",
			Date:    "2024-01-15",
			Comments: []models.Comment{
				{Author: "Ben", Text: "Worked on the first try."},
			},
		},
	}
}
