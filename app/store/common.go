package store

import (
	"encoding/json"
	"fmt"

	"inkwell/app/models"
)

// encodePosts marshals the collection for persistence. Indented so the
// data file stays readable and diffable.
func encodePosts(posts []models.Post) ([]byte, error) {
	if posts == nil {
		posts = []models.Post{}
	}
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal posts: %v", err)
	}
	return data, nil
}

// decodePosts unmarshals a persisted collection and normalizes every
// post so optional sequences come back empty, never nil.
func decodePosts(data []byte) ([]models.Post, error) {
	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal posts: %v", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	for i := range posts {
		posts[i].Normalize()
	}
	return posts, nil
}
