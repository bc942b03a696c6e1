package updatecoupon

import (
	"context"
	"errors"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/coupon"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	Repository *coupon.FakeRepository
	Service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Repository = coupon.NewFakeRepository()
	suite.Service = New(suite.Logger, suite.Repository)
}

func TestUpdateCouponService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	created, err := suite.Repository.Create(ctx, coupon.CreateCouponInput{
		Code:            "WELCOME10",
		DiscountPercent: 10,
		CreatedAt:       NOW,
	})
	suite.Require().Nil(err)

	expiresAt := c.NewOptional(NOW.Add(24*time.Hour), true)
	result, err := suite.Service.Run(ctx, Input{
		ID:              created.ID,
		Code:            "WELCOME15",
		DiscountPercent: 15,
		ExpiresAt:       expiresAt,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, result.Coupon.ID)
	assert.Equal(coupon.Code("WELCOME15"), result.Coupon.Code)
	assert.Equal(uint32(15), result.Coupon.DiscountPercent)
	assert.Equal(expiresAt, result.Coupon.ExpiresAt)
}

func (suite *testSuite) TestCouponDoesNotExistError() {
	ctx := context.Background()

	_, err := suite.Service.Run(ctx, Input{ID: 42, Code: "WELCOME15", DiscountPercent: 15})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, coupon.ErrCouponDoesNotExist))
}
