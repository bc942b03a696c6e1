package deletecategory

import (
	"context"
	"errors"
	"storefront/internal/core/domain/category"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	Repository *category.FakeRepository
	Service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Repository = category.NewFakeRepository()
	suite.Service = New(suite.Logger, suite.Repository)
}

func TestDeleteCategoryService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	created, err := suite.Repository.Create(ctx, category.CreateCategoryInput{
		Name:      "Drinks",
		CreatedAt: time.Now().UTC(),
	})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{ID: created.ID})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(suite.Repository.Categories, 0)
}

func (suite *testSuite) TestCategoryDoesNotExistError() {
	ctx := context.Background()

	_, err := suite.Service.Run(ctx, Input{ID: 42})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, category.ErrCategoryDoesNotExist))
}
