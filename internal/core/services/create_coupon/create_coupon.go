package createcoupon

import (
	"context"
	"errors"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/coupon"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/services"
	"time"

	"github.com/google/uuid"
)

type Input struct {
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
	now        func() time.Time
}

func New(
	log logging.Logger,
	repository coupon.Repository,
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
	code := input.Code
	if code == "" {
		code = coupon.Code(uuid.New().String())
	}
	created, err := s.repository.Create(ctx, coupon.CreateCouponInput{
		Code:            code,
		DiscountPercent: input.DiscountPercent,
		ExpiresAt:       input.ExpiresAt,
		CreatedAt:       s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create coupon.",
			logging.Entry("code", code),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "Coupon has been created.", logging.Entry("couponId", created.ID))
	return Result{Coupon: created}, nil
}
