package models

// Post represents a blog post with comments.
type Post struct {
	ID         int       `json:"id" validate:"gte=0"`
	Title      string    `json:"title" validate:"required"`
	Content    string    `json:"content" validate:"required"`
	Author     string    `json:"author" validate:"required"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	Categories []string  `json:"categories" validate:"-"`
	Tags       []string  `json:"tags" validate:"-"`
	Comments   []Comment `json:"comments" validate:"-"`
}

// Comment represents a comment on a blog post. Comments belong to
// exactly one post and have no identity of their own.
type Comment struct {
	Author string `json:"author" validate:"required"`
	Text   string `json:"text" validate:"required"`
}
