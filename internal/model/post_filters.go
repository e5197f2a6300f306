package model

type PostFilters struct {
	Category *Category
	AuthorID *string
	Limit    *int
	Offset   *int
}
