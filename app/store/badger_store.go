package store

import (
	"log"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// postsKey is the single key holding the whole ordered collection.
// Storing the collection as one value keeps insertion order intact and
// makes every Save an atomic replacement in one transaction.
const postsKey = "inkwell:posts"

// BadgerStore keeps the collection in a Badger database on disk.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (or creates) a Badger database at the given path.
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, &models.StorageError{Op: "init", Err: err}
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStoreInMemory opens a Badger database that lives only in
// memory. Used by tests.
func NewBadgerStoreInMemory() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, &models.StorageError{Op: "init", Err: err}
	}
	return &BadgerStore{db: db}, nil
}

// Load reads the persisted collection. A missing key means an empty
// collection; an undecodable value is logged and degrades to empty.
func (s *BadgerStore) Load() ([]models.Post, error) {
	posts := []models.Post{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(postsKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, err := decodePosts(val)
			if err != nil {
				log.Printf("Ignoring unreadable post data under %s: %v", postsKey, err)
				return nil
			}
			posts = decoded
			return nil
		})
	})
	if err != nil {
		return nil, &models.StorageError{Op: "load", Err: err}
	}
	return posts, nil
}

// Save replaces the persisted collection in a single transaction.
func (s *BadgerStore) Save(posts []models.Post) error {
	data, err := encodePosts(posts)
	if err != nil {
		return &models.StorageError{Op: "save", Err: err}
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(postsKey), data)
	})
	if err != nil {
		return &models.StorageError{Op: "save", Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
