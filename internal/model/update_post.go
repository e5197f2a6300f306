package model

// UpdatePostDTO carries the mutable fields of a post. ID, AuthorID, Author
// and CreatedAt are deliberately absent: the repository can only write what
// the DTO can express.
type UpdatePostDTO struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Excerpt  *string   `json:"excerpt,omitempty"`
	Category *Category `json:"category,omitempty"`
	ImageURL *string   `json:"image_url,omitempty"`
}
