package category

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Categories  []Category
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Categories: make([]Category, 0, 10)}
}

func (r *FakeRepository) GetAll(ctx context.Context) ([]Category, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list categories")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	categories := make([]Category, len(r.Categories))
	copy(categories, r.Categories)
	return categories, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (category Category, err error) {
	if r.ReturnError {
		return category, fmt.Errorf("could not get category %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Categories {
		if existing.ID == id {
			return existing, nil
		}
	}
	return category, ErrCategoryDoesNotExist
}

func (r *FakeRepository) Create(ctx context.Context, input CreateCategoryInput) (category Category, err error) {
	if r.ReturnError {
		return category, fmt.Errorf("could not create category %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Categories {
		maxID = existing.ID
	}
	category = Category{
		ID:          maxID + 1,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   input.CreatedAt,
	}
	r.Categories = append(r.Categories, category)
	return category, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateCategoryInput) (category Category, err error) {
	if r.ReturnError {
		return category, fmt.Errorf("could not update category %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Categories {
		if r.Categories[ix].ID == input.ID {
			r.Categories[ix].Name = input.Name
			r.Categories[ix].Description = input.Description
			return r.Categories[ix], nil
		}
	}
	return category, ErrCategoryDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete category %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Categories {
		if r.Categories[ix].ID == id {
			r.Categories = append(r.Categories[:ix], r.Categories[ix+1:]...)
			return nil
		}
	}
	return ErrCategoryDoesNotExist
}
