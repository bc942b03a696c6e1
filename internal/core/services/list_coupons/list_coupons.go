package listcoupons

import (
	"context"
	"errors"
	"storefront/internal/core/domain/coupon"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/services"
)

type Input struct{}

type Result struct {
	Coupons []coupon.Coupon
}

type service struct {
	log        logging.Logger
	repository coupon.Repository
}

func New(
	log logging.Logger,
	repository coupon.Repository,
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
	coupons, err := s.repository.GetAll(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not list coupons.", logging.Entry("err", err))
		return result, err
	}
	return Result{Coupons: coupons}, nil
}
