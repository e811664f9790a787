package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for post comments
type CommentController struct {
	postService *services.PostService
}

// NewCommentController creates a new CommentController
func NewCommentController(service *services.PostService) *CommentController {
	return &CommentController{postService: service}
}

// Index handles listing the comments of a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		cc.sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	comments, err := cc.postService.ListComments(postID)
	if err != nil {
		cc.sendFailure(w, err)
		return
	}
	cc.sendJSON(w, http.StatusOK, comments)
}

// Create handles adding a comment to a post, returning the updated post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		cc.sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var params services.CommentParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		cc.sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := cc.postService.AddComment(postID, params)
	if err != nil {
		cc.sendFailure(w, err)
		return
	}
	cc.sendJSON(w, http.StatusCreated, post)
}

// Helper methods for consistent response handling

func (cc *CommentController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (cc *CommentController) sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (cc *CommentController) sendFailure(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		cc.sendError(w, http.StatusBadRequest, verr.Message)
		return
	}
	var nferr *models.NotFoundError
	if errors.As(err, &nferr) {
		cc.sendError(w, http.StatusNotFound, "Post not found")
		return
	}
	log.Printf("Comment request failed: %v", err)
	cc.sendError(w, http.StatusInternalServerError, "Internal server error")
}
