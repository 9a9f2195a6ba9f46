package models

import (
	"strconv"
	"strings"
)

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// CategoryInput is the body of the admin create/update category calls.
type CategoryInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// FindCategory resolves sel against cats by slug, numeric id or
// case-insensitive name, in that order.
func FindCategory(cats []Category, sel string) (Category, bool) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return Category{}, false
	}
	for _, c := range cats {
		if c.Slug != "" && c.Slug == sel {
			return c, true
		}
	}
	if id, err := strconv.ParseInt(sel, 10, 64); err == nil {
		for _, c := range cats {
			if c.ID == id {
				return c, true
			}
		}
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, sel) {
			return c, true
		}
	}
	return Category{}, false
}
