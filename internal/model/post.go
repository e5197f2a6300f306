package model

import "github.com/jackc/pgx/v5/pgtype"

// Post is a single blog entry. AuthorID and Author are written once at
// creation: Author holds the nickname snapshot of that moment and is never
// back-filled when the profile nickname changes later.
type Post struct {
	ID        string             `json:"id"`
	AuthorID  string             `json:"author_id"`
	Author    string             `json:"author"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Excerpt   string             `json:"excerpt"`
	Category  Category           `json:"category"`
	ImageURL  *string            `json:"image_url,omitempty"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
