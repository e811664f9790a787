package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/app/models"
	"inkwell/app/services"
	"inkwell/app/store/mock"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCommentRouter(seed ...models.Post) (*mux.Router, *mock.Store) {
	st := mock.NewStore(seed...)
	controller := NewCommentController(services.NewPostService(st))

	router := mux.NewRouter()
	router.HandleFunc("/api/posts/{postId:[0-9]+}/comments", controller.Index).Methods("GET")
	router.HandleFunc("/api/posts/{postId:[0-9]+}/comments", controller.Create).Methods("POST")

	return router, st
}

func TestCommentControllerCreate(t *testing.T) {
	router, st := setupCommentRouter(seedPosts()...)

	t.Run("adds a comment and returns the parent post", func(t *testing.T) {
		payload := `{"author": "ann", "text": "great read"}`

		req := httptest.NewRequest(http.MethodPost, "/api/posts/1/comments", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.ID)
		require.Len(t, response.Comments, 1)
		assert.Equal(t, "ann", response.Comments[0].Author)

		assert.Len(t, st.Posts()[0].Comments, 1)
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/posts/1/comments", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Missing fields: author, text", response["error"])
	})

	t.Run("unknown post is a 404", func(t *testing.T) {
		payload := `{"author": "ann", "text": "hi"}`

		req := httptest.NewRequest(http.MethodPost, "/api/posts/99/comments", strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Post not found")
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/posts/1/comments", strings.NewReader("{oops"))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCommentControllerIndex(t *testing.T) {
	post := seedPosts()[0]
	post.Comments = []models.Comment{
		{Author: "ann", Text: "first"},
		{Author: "joe", Text: "second"},
	}
	router, _ := setupCommentRouter(post)

	t.Run("lists comments in order", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/posts/1/comments", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []models.Comment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 2)
		assert.Equal(t, "first", response[0].Text)
		assert.Equal(t, "second", response[1].Text)
	})

	t.Run("unknown post is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/posts/42/comments", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
