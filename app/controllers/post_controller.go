package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/query"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(service *services.PostService) *PostController {
	return &PostController{postService: service}
}

// Index handles listing posts with optional sorting and pagination
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	opts := query.ListOptions{
		Sort:      r.URL.Query().Get("sort"),
		Direction: r.URL.Query().Get("direction"),
		Page:      intParam(r, "page", 1),
		Limit:     intParam(r, "limit", 10),
	}

	posts, err := pc.postService.ListPosts(opts)
	if err != nil {
		pc.sendFailure(w, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, posts)
}

// Search handles field-filtered post search
func (pc *PostController) Search(w http.ResponseWriter, r *http.Request) {
	q := query.SearchQuery{
		Title:   r.URL.Query().Get("title"),
		Content: r.URL.Query().Get("content"),
		Author:  r.URL.Query().Get("author"),
		Date:    r.URL.Query().Get("date"),
	}

	posts, err := pc.postService.SearchPosts(q)
	if err != nil {
		pc.sendFailure(w, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, posts)
}

// Show handles fetching a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pc.sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.sendFailure(w, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var params services.CreatePostParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pc.sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.CreatePost(params)
	if err != nil {
		pc.sendFailure(w, err)
		return
	}
	pc.sendJSON(w, http.StatusCreated, post)
}

// Edit handles a partial update of an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pc.sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var params services.UpdatePostParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pc.sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.UpdatePost(id, params)
	if err != nil {
		pc.sendFailure(w, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		pc.sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		pc.sendFailure(w, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Post with id %d has been deleted successfully.", id),
	})
}

// pathID reads an integer path variable.
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

// intParam reads a positive integer query parameter, falling back on
// missing or unusable values.
func intParam(r *http.Request, name string, fallback int) int {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

// Helper methods for consistent response handling

func (pc *PostController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (pc *PostController) sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// sendFailure maps service errors onto HTTP responses.
func (pc *PostController) sendFailure(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		pc.sendError(w, http.StatusBadRequest, verr.Message)
		return
	}
	var nferr *models.NotFoundError
	if errors.As(err, &nferr) {
		pc.sendError(w, http.StatusNotFound, "Post not found")
		return
	}
	log.Printf("Post request failed: %v", err)
	pc.sendError(w, http.StatusInternalServerError, "Internal server error")
}
