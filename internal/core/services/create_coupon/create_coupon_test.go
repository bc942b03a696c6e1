package createcoupon

import (
	"context"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/coupon"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/services"
	"testing"
	"time"

	"github.com/google/uuid"
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
	suite.Service = New(suite.Logger, suite.Repository, func() time.Time { return NOW })
}

func TestCreateCouponService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	expiresAt := c.NewOptional(NOW.Add(24*time.Hour), true)

	result, err := suite.Service.Run(ctx, Input{
		Code:            "WELCOME10",
		DiscountPercent: 10,
		ExpiresAt:       expiresAt,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(coupon.ID(0), result.Coupon.ID)
	assert.Equal(coupon.Code("WELCOME10"), result.Coupon.Code)
	assert.Equal(uint32(10), result.Coupon.DiscountPercent)
	assert.Equal(expiresAt, result.Coupon.ExpiresAt)
	assert.Equal(NOW, result.Coupon.CreatedAt)
}

func (suite *testSuite) TestCodeIsGeneratedWhenAbsent() {
	ctx := context.Background()

	result, err := suite.Service.Run(ctx, Input{DiscountPercent: 5})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(coupon.Code(""), result.Coupon.Code)
	_, err = uuid.Parse(string(result.Coupon.Code))
	assert.Nil(err)
}

func (suite *testSuite) TestRepositoryErrorIsReturned() {
	ctx := context.Background()
	suite.Repository.ReturnError = true

	_, err := suite.Service.Run(ctx, Input{Code: "WELCOME10", DiscountPercent: 10})

	suite.Require().NotNil(err)
}
