package response

import (
	"storefront/internal/core/domain/coupon"
	"time"
)

type Coupon struct {
	ID              int64      `json:"id"`
	Code            string     `json:"code"`
	DiscountPercent uint32     `json:"discount_percent"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewCoupon(dc coupon.Coupon) Coupon {
	c := Coupon{
		ID:              int64(dc.ID),
		Code:            string(dc.Code),
		DiscountPercent: dc.DiscountPercent,
		CreatedAt:       dc.CreatedAt,
	}
	if dc.ExpiresAt.IsPresent {
		expiresAt := dc.ExpiresAt.Value
		c.ExpiresAt = &expiresAt
	}
	return c
}

func NewCoupons(dcs []coupon.Coupon) []Coupon {
	coupons := make([]Coupon, 0, len(dcs))
	for _, dc := range dcs {
		coupons = append(coupons, NewCoupon(dc))
	}
	return coupons
}
