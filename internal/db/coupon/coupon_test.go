package coupon

import (
	"context"
	"errors"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/coupon"
	"storefront/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var (
	NOW        time.Time = time.Date(2023, 6, 6, 15, 30, 30, 0, time.UTC)
	EXPIRES_AT time.Time = time.Date(2023, 7, 6, 15, 30, 30, 0, time.UTC)
)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxCouponRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.T(), suite.pool)
}

func TestPgxCouponRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createCoupon(code string, expiresAt c.Optional[time.Time]) coupon.Coupon {
	cp, err := suite.repo.Create(context.Background(), coupon.CreateCouponInput{
		Code:            coupon.Code(code),
		DiscountPercent: 15,
		ExpiresAt:       expiresAt,
		CreatedAt:       NOW,
	})
	suite.Require().Nil(err)
	return cp
}

func (suite *testSuite) TestCreateWithExpiry() {
	cp := suite.createCoupon("SUMMER15", c.NewOptional(EXPIRES_AT, true))

	assert := suite.Require()
	assert.NotEqual(coupon.ID(0), cp.ID)
	assert.Equal(coupon.Code("SUMMER15"), cp.Code)
	assert.Equal(uint32(15), cp.DiscountPercent)
	assert.True(cp.ExpiresAt.IsPresent)
	assert.True(cp.ExpiresAt.Value.Equal(EXPIRES_AT))
}

func (suite *testSuite) TestCreateWithoutExpiry() {
	cp := suite.createCoupon("FOREVER", c.Optional[time.Time]{})

	assert := suite.Require()
	assert.False(cp.ExpiresAt.IsPresent)
}

func (suite *testSuite) TestGetByID() {
	created := suite.createCoupon("SUMMER15", c.NewOptional(EXPIRES_AT, true))

	got, err := suite.repo.GetByID(context.Background(), created.ID)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, got.ID)
	assert.Equal(coupon.Code("SUMMER15"), got.Code)
	assert.True(got.ExpiresAt.IsPresent)
}

func (suite *testSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(context.Background(), coupon.ID(123456))
	suite.Require().True(errors.Is(err, coupon.ErrCouponDoesNotExist))
}

func (suite *testSuite) TestGetAllOrderedByID() {
	first := suite.createCoupon("FIRST", c.Optional[time.Time]{})
	second := suite.createCoupon("SECOND", c.Optional[time.Time]{})

	coupons, err := suite.repo.GetAll(context.Background())

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(coupons, 2)
	assert.Equal(first.ID, coupons[0].ID)
	assert.Equal(second.ID, coupons[1].ID)
}

func (suite *testSuite) TestUpdateSuccess() {
	created := suite.createCoupon("SUMMER15", c.NewOptional(EXPIRES_AT, true))

	updated, err := suite.repo.Update(context.Background(), coupon.UpdateCouponInput{
		ID:              created.ID,
		Code:            coupon.Code("AUTUMN20"),
		DiscountPercent: 20,
		ExpiresAt:       c.Optional[time.Time]{},
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, updated.ID)
	assert.Equal(coupon.Code("AUTUMN20"), updated.Code)
	assert.Equal(uint32(20), updated.DiscountPercent)
	assert.False(updated.ExpiresAt.IsPresent)
}

func (suite *testSuite) TestUpdateNotFound() {
	_, err := suite.repo.Update(context.Background(), coupon.UpdateCouponInput{
		ID:              coupon.ID(123456),
		Code:            coupon.Code("NOPE"),
		DiscountPercent: 5,
	})
	suite.Require().True(errors.Is(err, coupon.ErrCouponDoesNotExist))
}

func (suite *testSuite) TestDeleteSuccess() {
	created := suite.createCoupon("SUMMER15", c.Optional[time.Time]{})

	err := suite.repo.Delete(context.Background(), created.ID)
	suite.Require().Nil(err)

	_, err = suite.repo.GetByID(context.Background(), created.ID)
	suite.Require().True(errors.Is(err, coupon.ErrCouponDoesNotExist))
}

func (suite *testSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(context.Background(), coupon.ID(123456))
	suite.Require().True(errors.Is(err, coupon.ErrCouponDoesNotExist))
}
