package model

type CreatePostDTO struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
	ImageURL *string  `json:"image_url,omitempty"`
}
