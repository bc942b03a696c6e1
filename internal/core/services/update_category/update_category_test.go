package updatecategory

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

var NOW time.Time = time.Now().UTC()

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

func TestUpdateCategoryService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	created, err := suite.Repository.Create(ctx, category.CreateCategoryInput{
		Name:        "Drinks",
		Description: "Hot and cold drinks",
		CreatedAt:   NOW,
	})
	suite.Require().Nil(err)

	result, err := suite.Service.Run(ctx, Input{ID: created.ID, Name: "Beverages", Description: "All drinks"})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, result.Category.ID)
	assert.Equal("Beverages", result.Category.Name)
	assert.Equal("All drinks", result.Category.Description)
	assert.Equal(NOW, result.Category.CreatedAt)
}

func (suite *testSuite) TestCategoryDoesNotExistError() {
	ctx := context.Background()

	_, err := suite.Service.Run(ctx, Input{ID: 42, Name: "Beverages"})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, category.ErrCategoryDoesNotExist))
}
