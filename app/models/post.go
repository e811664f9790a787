package models

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return asValidationError(err)
	}
	return nil
}

// Normalize ensures the optional collections are present as empty
// sequences rather than nil, so they serialize as [] and not null.
func (p *Post) Normalize() {
	if p.Categories == nil {
		p.Categories = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}

// Clone returns a deep copy of the post. The copy shares no slices with
// the original, so callers can mutate it freely.
func (p Post) Clone() Post {
	out := p
	out.Categories = append([]string{}, p.Categories...)
	out.Tags = append([]string{}, p.Tags...)
	out.Comments = append([]Comment{}, p.Comments...)
	return out
}

// ClonePosts deep-copies a whole post collection.
func ClonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	for i := range posts {
		out[i] = posts[i].Clone()
	}
	return out
}
