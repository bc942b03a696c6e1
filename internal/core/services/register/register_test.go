package register

import (
	"context"
	"errors"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/domain/user"
	"storefront/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = c.Email("test@test.test")
	NAME         = "Test User"
	RAW_PASSWORD = user.RawPassword("test-password")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	SessionIssuer  *user.FakeSessionTokenIssuer
	Notifier       *user.FakeNotifier
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.SessionIssuer = user.NewFakeSessionTokenIssuer()
	suite.Notifier = user.NewFakeNotifier()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
		suite.SessionIssuer,
		suite.Notifier,
		func() time.Time { return NOW },
	)
}

func TestRegisterService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()

	result, err := suite.Service.Run(ctx, Input{Email: EMAIL, Name: NAME, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal(NAME, result.User.Name)
	assert.Equal(user.RoleUser, result.User.Role)
	assert.Equal(NOW, result.User.CreatedAt)
	assert.NotEqual(user.PasswordHash(RAW_PASSWORD), result.User.PasswordHash)
	assert.NotEqual(user.SessionToken(""), result.Token)

	claims, err := suite.SessionIssuer.Parse(result.Token)
	assert.Nil(err)
	assert.Equal(result.User.ID, claims.UserID)
	assert.Equal(EMAIL, claims.Email)

	assert.Len(suite.Notifier.SentWelcome, 1)
	assert.Equal(EMAIL, suite.Notifier.SentWelcome[0].Email)
	assert.Equal(NAME, suite.Notifier.SentWelcome[0].Name)
}

func (suite *testSuite) TestExplicitRoleIsKept() {
	ctx := context.Background()

	result, err := suite.Service.Run(
		ctx,
		Input{Email: EMAIL, Name: NAME, Password: RAW_PASSWORD, Role: user.RoleAdmin},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.RoleAdmin, result.User.Role)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Name: NAME, Password: RAW_PASSWORD})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{Email: EMAIL, Name: "Other", Password: "other-password"})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrEmailAlreadyExists))
	assert.Len(suite.UserRepository.Users, 1)
	assert.Len(suite.Notifier.SentWelcome, 1)
}

func (suite *testSuite) TestNotifierErrorFailsRegistration() {
	ctx := context.Background()
	suite.Notifier.ReturnError = true

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Name: NAME, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	// The user row stays committed even though the operation failed.
	assert.Len(suite.UserRepository.Users, 1)
}

func (suite *testSuite) TestRepositoryErrorIsReturned() {
	ctx := context.Background()
	suite.UserRepository.ReturnError = true

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Name: NAME, Password: RAW_PASSWORD})

	suite.Require().NotNil(err)
	suite.Require().False(errors.Is(err, user.ErrEmailAlreadyExists))
}
