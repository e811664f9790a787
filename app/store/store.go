package store

import "inkwell/app/models"

// Store owns the durable post collection. Load returns the full
// collection in insertion order, Save replaces it wholesale. Stores do
// no locking of their own; the service serializes writers.
type Store interface {
	Load() ([]models.Post, error)
	Save(posts []models.Post) error
	Close() error
}

// NextID returns the ID for the next post: one more than the highest ID
// in the collection, or 1 when it is empty.
func NextID(posts []models.Post) int {
	maxID := 0
	for i := range posts {
		if posts[i].ID > maxID {
			maxID = posts[i].ID
		}
	}
	return maxID + 1
}
