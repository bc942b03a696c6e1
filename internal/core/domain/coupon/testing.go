package coupon

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Coupons     []Coupon
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Coupons: make([]Coupon, 0, 10)}
}

func (r *FakeRepository) GetAll(ctx context.Context) ([]Coupon, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list coupons")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	coupons := make([]Coupon, len(r.Coupons))
	copy(coupons, r.Coupons)
	return coupons, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (coupon Coupon, err error) {
	if r.ReturnError {
		return coupon, fmt.Errorf("could not get coupon %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Coupons {
		if existing.ID == id {
			return existing, nil
		}
	}
	return coupon, ErrCouponDoesNotExist
}

func (r *FakeRepository) Create(ctx context.Context, input CreateCouponInput) (coupon Coupon, err error) {
	if r.ReturnError {
		return coupon, fmt.Errorf("could not create coupon %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Coupons {
		maxID = existing.ID
	}
	coupon = Coupon{
		ID:              maxID + 1,
		Code:            input.Code,
		DiscountPercent: input.DiscountPercent,
		ExpiresAt:       input.ExpiresAt,
		CreatedAt:       input.CreatedAt,
	}
	r.Coupons = append(r.Coupons, coupon)
	return coupon, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateCouponInput) (coupon Coupon, err error) {
	if r.ReturnError {
		return coupon, fmt.Errorf("could not update coupon %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Coupons {
		if r.Coupons[ix].ID == input.ID {
			r.Coupons[ix].Code = input.Code
			r.Coupons[ix].DiscountPercent = input.DiscountPercent
			r.Coupons[ix].ExpiresAt = input.ExpiresAt
			return r.Coupons[ix], nil
		}
	}
	return coupon, ErrCouponDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete coupon %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Coupons {
		if r.Coupons[ix].ID == id {
			r.Coupons = append(r.Coupons[:ix], r.Coupons[ix+1:]...)
			return nil
		}
	}
	return ErrCouponDoesNotExist
}
