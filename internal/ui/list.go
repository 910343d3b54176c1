package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/senflix/sfx/internal/models"
)

var (
	_ list.Item = movieItem{}
	_ list.Item = categoryItem{}
)

// movieItem wraps [models.MovieCandidate] to implement [list.Item].
type movieItem struct {
	movie models.MovieCandidate
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string {
	if i.movie.Year != "" {
		return fmt.Sprintf("%s (%s)", i.movie.Title, i.movie.Year)
	}
	return i.movie.Title
}
func (i movieItem) Description() string {
	badge := "Add to collection"
	if i.movie.InCatalog() {
		badge = "In catalog"
	}
	if i.movie.Director != "" && i.movie.Director != "N/A" {
		return fmt.Sprintf("%s • %s", badge, i.movie.Director)
	}
	return badge
}

// categoryItem wraps [models.CategoryOption] to implement [list.Item]. The
// checkmark reflects the wizard session's selection set.
type categoryItem struct {
	category models.CategoryOption
	selected bool
}

func (i categoryItem) FilterValue() string { return i.category.Name }
func (i categoryItem) Title() string {
	if i.selected {
		return fmt.Sprintf("[x] %s", i.category.Name)
	}
	return fmt.Sprintf("[ ] %s", i.category.Name)
}
func (i categoryItem) Description() string { return i.category.Img }
