package deletecoupon

import (
	"context"
	"errors"
	"storefront/internal/core/domain/coupon"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/services"
)

type Input struct {
	ID coupon.ID
}

type Result struct{}

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
	err = s.repository.Delete(ctx, input.ID)
	if errors.Is(err, context.Canceled) || errors.Is(err, coupon.ErrCouponDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete coupon.",
			logging.Entry("couponId", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "Coupon has been deleted.", logging.Entry("couponId", input.ID))
	return result, nil
}
