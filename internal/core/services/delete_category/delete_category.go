package deletecategory

import (
	"context"
	"errors"
	"storefront/internal/core/domain/category"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/services"
)

type Input struct {
	ID category.ID
}

type Result struct{}

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
	err = s.repository.Delete(ctx, input.ID)
	if errors.Is(err, context.Canceled) || errors.Is(err, category.ErrCategoryDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete category.",
			logging.Entry("categoryId", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "Category has been deleted.", logging.Entry("categoryId", input.ID))
	return result, nil
}
