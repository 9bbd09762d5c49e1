package models

import (
	dErrors "festa/pkg/domain-errors"
)

// Category classifies a project by how it takes part in the festival.
type Category string

const (
	CategoryGeneral Category = "general"
	CategoryStage   Category = "stage"
	CategoryCooking Category = "cooking"
	CategoryFood    Category = "food"
)

// Categories lists every category in canonical order.
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryStage, CategoryCooking, CategoryFood}
}

// ParseCategory constructs a Category from external input.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid project category: "+s)
	}
	return c, nil
}

// IsValid checks if the category is one of the supported enum values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryStage, CategoryCooking, CategoryFood:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// codeLetter is the prefix of a project's public code.
func (c Category) codeLetter() byte {
	switch c {
	case CategoryStage:
		return 'S'
	case CategoryCooking:
		return 'C'
	case CategoryFood:
		return 'F'
	default:
		return 'G'
	}
}
