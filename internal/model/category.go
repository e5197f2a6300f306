package model

import "fmt"

// Category is the closed set of post categories shared between the client
// and validation.
type Category string

const (
	CategoryDaily   Category = "Daily"
	CategoryGame    Category = "Game"
	CategoryHobby   Category = "Hobby"
	CategoryProject Category = "Project"
)

func (c Category) IsValid() error {
	switch c {
	case CategoryDaily, CategoryGame, CategoryHobby, CategoryProject:
		return nil
	}
	return fmt.Errorf("invalid category: %s", c)
}

func (c *Category) UnmarshalText(text []byte) error {
	cat := Category(text)
	if err := cat.IsValid(); err != nil {
		return err
	}
	*c = cat
	return nil
}
