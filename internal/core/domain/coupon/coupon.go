package coupon

import (
	"context"
	"errors"
	c "storefront/internal/core/domain/common"
	"time"
)

type ID int64

type Code string

type Coupon struct {
	ID              ID
	Code            Code
	DiscountPercent uint32
	ExpiresAt       c.Optional[time.Time]
	CreatedAt       time.Time
}

var ErrCouponDoesNotExist = errors.New("coupon does not exist")

type CreateCouponInput struct {
	Code            Code
	DiscountPercent uint32
	ExpiresAt       c.Optional[time.Time]
	CreatedAt       time.Time
}

type UpdateCouponInput struct {
	ID              ID
	Code            Code
	DiscountPercent uint32
	ExpiresAt       c.Optional[time.Time]
}

type Repository interface {
	GetAll(ctx context.Context) ([]Coupon, error)
	GetByID(ctx context.Context, id ID) (Coupon, error)
	Create(ctx context.Context, input CreateCouponInput) (Coupon, error)
	Update(ctx context.Context, input UpdateCouponInput) (Coupon, error)
	Delete(ctx context.Context, id ID) error
}
