package createcategory

import (
	"context"
	"errors"
	"storefront/internal/core/domain/category"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/services"
	"time"
)

type Input struct {
	Name        string
	Description string
}

type Result struct {
	Category category.Category
}

type service struct {
	log        logging.Logger
	repository category.Repository
	now        func() time.Time
}

func New(
	log logging.Logger,
	repository category.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, repository: repository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	created, err := s.repository.Create(ctx, category.CreateCategoryInput{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create category.",
			logging.Entry("name", input.Name),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "Category has been created.", logging.Entry("categoryId", created.ID))
	return Result{Category: created}, nil
}
