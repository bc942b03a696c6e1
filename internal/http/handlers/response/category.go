package response

import (
	"storefront/internal/core/domain/category"
	"time"
)

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCategory(dc category.Category) Category {
	return Category{
		ID:          int64(dc.ID),
		Name:        dc.Name,
		Description: dc.Description,
		CreatedAt:   dc.CreatedAt,
	}
}

func NewCategories(dcs []category.Category) []Category {
	categories := make([]Category, 0, len(dcs))
	for _, dc := range dcs {
		categories = append(categories, NewCategory(dc))
	}
	return categories
}
