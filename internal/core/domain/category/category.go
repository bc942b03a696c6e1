package category

import (
	"context"
	"errors"
	"time"
)

type ID int64

type Category struct {
	ID          ID
	Name        string
	Description string
	CreatedAt   time.Time
}

var ErrCategoryDoesNotExist = errors.New("category does not exist")

type CreateCategoryInput struct {
	Name        string
	Description string
	CreatedAt   time.Time
}

type UpdateCategoryInput struct {
	ID          ID
	Name        string
	Description string
}

type Repository interface {
	GetAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id ID) (Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (Category, error)
	Update(ctx context.Context, input UpdateCategoryInput) (Category, error)
	Delete(ctx context.Context, id ID) error
}
