package services

import (
	"inkwell/app/models"
)

// CommentParams carries the fields for a new comment.
type CommentParams struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// AddComment validates the fields and appends a comment to the post
// with the given ID, returning the updated parent post. Comments keep
// their insertion order; nothing ever removes one.
func (s *PostService) AddComment(postID int, params CommentParams) (*models.Post, error) {
	comment := models.Comment{Author: params.Author, Text: params.Text}
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	posts, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	idx := indexOf(posts, postID)
	if idx < 0 {
		return nil, &models.NotFoundError{ID: postID}
	}

	updated := posts[idx].Clone()
	updated.Comments = append(updated.Comments, comment)
	posts[idx] = updated
	if err := s.store.Save(posts); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListComments returns the comments of one post in insertion order.
func (s *PostService) ListComments(postID int) ([]models.Comment, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	posts, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	idx := indexOf(posts, postID)
	if idx < 0 {
		return nil, &models.NotFoundError{ID: postID}
	}
	return append([]models.Comment{}, posts[idx].Comments...), nil
}
