package mock

import (
	"sync"

	"inkwell/app/models"
)

// Store is an in-memory store for tests. LoadErr and SaveErr, when set,
// are returned by the corresponding operation so failure paths can be
// exercised.
type Store struct {
	mutex   sync.RWMutex
	posts   []models.Post
	LoadErr error
	SaveErr error
	saves   int
}

func NewStore(seed ...models.Post) *Store {
	return &Store{posts: models.ClonePosts(seed)}
}

func (m *Store) Load() ([]models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return models.ClonePosts(m.posts), nil
}

func (m *Store) Save(posts []models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.posts = models.ClonePosts(posts)
	m.saves++
	return nil
}

func (m *Store) Close() error {
	return nil
}

// Posts returns a copy of the current collection.
func (m *Store) Posts() []models.Post {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return models.ClonePosts(m.posts)
}

// Saves reports how many times Save succeeded.
func (m *Store) Saves() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.saves
}

func (m *Store) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = nil
	m.saves = 0
}
