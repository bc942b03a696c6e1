package updatecoupon

import (
	"context"
	"errors"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/coupon"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/services"
	"time"
)

type Input struct {
	ID              coupon.ID
	Code            coupon.Code
	DiscountPercent uint32
	ExpiresAt       c.Optional[time.Time]
}

type Result struct {
	Coupon coupon.Coupon
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
	updated, err := s.repository.Update(ctx, coupon.UpdateCouponInput{
		ID:              input.ID,
		Code:            input.Code,
		DiscountPercent: input.DiscountPercent,
		ExpiresAt:       input.ExpiresAt,
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, coupon.ErrCouponDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update coupon.",
			logging.Entry("couponId", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Coupon: updated}, nil
}
