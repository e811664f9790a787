// Package query holds the read-only transformations over a post
// collection: sorting, pagination and field search. Nothing here
// touches the store; callers pass in the snapshot they loaded.
package query

import (
	"sort"
	"strings"
	"time"

	"inkwell/app/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListOptions control sorting and pagination for List. The zero value
// means no sort, first page, default page size.
type ListOptions struct {
	Sort      string
	Direction string
	Page      int
	Limit     int
}

// SearchQuery holds the per-field filters for Search. Empty fields are
// ignored.
type SearchQuery struct {
	Title   string
	Content string
	Author  string
	Date    string
}

// lessFuncs orders posts by one field, ascending. String fields compare
// case-insensitively; date compares by calendar order.
var lessFuncs = map[string]func(a, b models.Post) bool{
	"title": func(a, b models.Post) bool {
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	},
	"content": func(a, b models.Post) bool {
		return strings.ToLower(a.Content) < strings.ToLower(b.Content)
	},
	"author": func(a, b models.Post) bool {
		return strings.ToLower(a.Author) < strings.ToLower(b.Author)
	},
	"date": func(a, b models.Post) bool {
		return parseDate(a.Date).Before(parseDate(b.Date))
	},
}

// List returns the requested page of posts, sorted first when a sort
// field is given. The input is never mutated. Ties on the sort key may
// come back in either order; no secondary key is applied.
func List(posts []models.Post, opts ListOptions) ([]models.Post, error) {
	var less func(a, b models.Post) bool
	if opts.Sort != "" {
		var ok bool
		less, ok = lessFuncs[opts.Sort]
		if !ok {
			return nil, models.NewValidationError("invalid sort field", "sort")
		}
	}

	direction := opts.Direction
	if direction == "" {
		direction = "asc"
	}
	if direction != "asc" && direction != "desc" {
		return nil, models.NewValidationError("invalid sort direction", "direction")
	}

	out := append([]models.Post(nil), posts...)
	if less != nil {
		sort.Slice(out, func(i, j int) bool {
			if direction == "desc" {
				return less(out[j], out[i])
			}
			return less(out[i], out[j])
		})
	}
	return paginate(out, opts.Page, opts.Limit), nil
}

// Search filters posts by the supplied fields, requiring every
// non-empty one to match: title, content and author by case-insensitive
// substring, date by exact equality. With no fields set the result is
// empty; a full listing has to be asked for through List.
func Search(posts []models.Post, q SearchQuery) []models.Post {
	if q.Title == "" && q.Content == "" && q.Author == "" && q.Date == "" {
		return []models.Post{}
	}

	out := []models.Post{}
	for _, p := range posts {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Post, q SearchQuery) bool {
	if q.Title != "" && !containsFold(p.Title, q.Title) {
		return false
	}
	if q.Content != "" && !containsFold(p.Content, q.Content) {
		return false
	}
	if q.Author != "" && !containsFold(p.Author, q.Author) {
		return false
	}
	if q.Date != "" && p.Date != q.Date {
		return false
	}
	return true
}

func paginate(posts []models.Post, page, limit int) []models.Post {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	start := (page - 1) * limit
	if start >= len(posts) {
		return []models.Post{}
	}
	end := start + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func parseDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
