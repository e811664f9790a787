package services

import (
	"sync"

	"inkwell/app/models"
	"inkwell/app/query"
	"inkwell/app/store"
)

// PostService handles business logic for blog posts. It is the sole
// write path to the store: every mutation runs its load-mutate-save
// sequence under one write lock, so concurrent requests cannot
// overwrite each other's saves. Reads share the lock.
type PostService struct {
	store store.Store
	mutex sync.RWMutex
}

// NewPostService creates a new PostService backed by the given store.
func NewPostService(st store.Store) *PostService {
	return &PostService{store: st}
}

// CreatePostParams carries the fields for a new post.
type CreatePostParams struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Author     string   `json:"author"`
	Date       string   `json:"date"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// UpdatePostParams carries a partial update. A nil field means "leave
// unchanged"; a present field overwrites, so an empty value can be set
// deliberately.
type UpdatePostParams struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Author     *string   `json:"author"`
	Date       *string   `json:"date"`
	Categories *[]string `json:"categories"`
	Tags       *[]string `json:"tags"`
}

// CreatePost validates the fields, assigns the next free ID and
// persists the new post.
func (s *PostService) CreatePost(params CreatePostParams) (*models.Post, error) {
	post := models.Post{
		Title:      params.Title,
		Content:    params.Content,
		Author:     params.Author,
		Date:       params.Date,
		Categories: params.Categories,
		Tags:       params.Tags,
	}
	post.Normalize()
	if err := post.Validate(); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	posts, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	post.ID = store.NextID(posts)
	posts = append(posts, post)
	if err := s.store.Save(posts); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPost retrieves a single post by ID.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	posts, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	idx := indexOf(posts, id)
	if idx < 0 {
		return nil, &models.NotFoundError{ID: id}
	}
	post := posts[idx].Clone()
	return &post, nil
}

// ListPosts returns one page of the collection, sorted per the options.
func (s *PostService) ListPosts(opts query.ListOptions) ([]models.Post, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	posts, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return query.List(posts, opts)
}

// SearchPosts returns the posts matching the query fields.
func (s *PostService) SearchPosts(q query.SearchQuery) ([]models.Post, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	posts, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return query.Search(posts, q), nil
}

// UpdatePost applies a partial update to the post with the given ID.
// Fields left nil keep their value. A date that is present but does not
// parse fails the whole update; nothing is written in that case.
func (s *PostService) UpdatePost(id int, params UpdatePostParams) (*models.Post, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	posts, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	idx := indexOf(posts, id)
	if idx < 0 {
		return nil, &models.NotFoundError{ID: id}
	}
	if params.Date != nil && !models.ValidDate(*params.Date) {
		return nil, models.NewValidationError("date must be in YYYY-MM-DD format", "date")
	}

	updated := posts[idx].Clone()
	if params.Title != nil {
		updated.Title = *params.Title
	}
	if params.Content != nil {
		updated.Content = *params.Content
	}
	if params.Author != nil {
		updated.Author = *params.Author
	}
	if params.Date != nil {
		updated.Date = *params.Date
	}
	if params.Categories != nil {
		updated.Categories = append([]string{}, (*params.Categories)...)
	}
	if params.Tags != nil {
		updated.Tags = append([]string{}, (*params.Tags)...)
	}

	posts[idx] = updated
	if err := s.store.Save(posts); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePost removes the post with the given ID from the collection.
func (s *PostService) DeletePost(id int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	posts, err := s.store.Load()
	if err != nil {
		return err
	}

	idx := indexOf(posts, id)
	if idx < 0 {
		return &models.NotFoundError{ID: id}
	}
	posts = append(posts[:idx], posts[idx+1:]...)
	return s.store.Save(posts)
}

// indexOf finds the position of the post with the given ID, or -1.
func indexOf(posts []models.Post, id int) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}
