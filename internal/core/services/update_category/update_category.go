package updatecategory

import (
	"context"
	"errors"
	"storefront/internal/core/domain/category"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/services"
)

type Input struct {
	ID          category.ID
	Name        string
	Description string
}

type Result struct {
	Category category.Category
}

type service struct {
	log        logging.Logger
	repository category.Repository
}

func New(
	log logging.Logger,
	repository category.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	return &service{log: log, repository: repository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	updated, err := s.repository.Update(ctx, category.UpdateCategoryInput{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, category.ErrCategoryDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update category.",
			logging.Entry("categoryId", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Category: updated}, nil
}
