package sendpasswordresettoken

import (
	"context"
	"net/url"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/logging"
	"storefront/internal/core/domain/user"
	"storefront/internal/core/services"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = c.Email("test@test.test")
	RAW_TOKEN    = "raw-reset-token-1"
	SECOND_TOKEN = "raw-reset-token-2"
)

var NOW time.Time = time.Now().UTC()

const VALID_DURATION = time.Hour

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	TokenGenerator *user.FakeResetTokenGenerator
	Notifier       *user.FakeNotifier
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.TokenGenerator = user.NewFakeResetTokenGenerator(RAW_TOKEN, SECOND_TOKEN)
	suite.Notifier = user.NewFakeNotifier()
	resetBaseURL, err := url.Parse("https://storefront.test/reset-password")
	suite.Require().Nil(err)
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.TokenGenerator,
		suite.Notifier,
		*resetBaseURL,
		VALID_DURATION,
		func() time.Time { return NOW },
	)
}

func (suite *testSuite) createUser(email c.Email) user.User {
	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        email,
		Name:         "Test User",
		PasswordHash: user.PasswordHash("hash"),
		Role:         user.RoleUser,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	return u
}

func TestSendPasswordResetTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	created := suite.createUser(EMAIL)

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)

	stored, ok := suite.UserRepository.GetByID(created.ID)
	assert.True(ok)
	assert.True(stored.ResetTokenFingerprint.IsPresent)
	assert.Equal(suite.TokenGenerator.Fingerprint(RAW_TOKEN), stored.ResetTokenFingerprint.Value)
	assert.True(stored.ResetTokenExpiresAt.IsPresent)
	assert.Equal(NOW.Add(VALID_DURATION), stored.ResetTokenExpiresAt.Value)

	assert.Len(suite.Notifier.SentPasswordResets, 1)
	link := suite.Notifier.LastPasswordResetLink()
	assert.Equal("https://storefront.test/reset-password?token="+RAW_TOKEN, link)
	// The stored fingerprint never appears in the message.
	assert.False(strings.Contains(link, string(stored.ResetTokenFingerprint.Value)))
}

func (suite *testSuite) TestUnknownEmailSucceedsSilently() {
	ctx := context.Background()

	_, err := suite.Service.Run(ctx, Input{Email: "unknown@test.test"})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(0, suite.Notifier.SentCount())
	assert.Len(suite.UserRepository.Users, 0)
}

func (suite *testSuite) TestSecondRequestOverwritesFirstToken() {
	ctx := context.Background()
	created := suite.createUser(EMAIL)

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL})
	suite.Require().Nil(err)
	_, err = suite.Service.Run(ctx, Input{Email: EMAIL})
	suite.Require().Nil(err)

	assert := suite.Require()
	stored, ok := suite.UserRepository.GetByID(created.ID)
	assert.True(ok)
	assert.Equal(suite.TokenGenerator.Fingerprint(SECOND_TOKEN), stored.ResetTokenFingerprint.Value)
	assert.Len(suite.Notifier.SentPasswordResets, 2)
}

func (suite *testSuite) TestNotifierErrorIsReturned() {
	ctx := context.Background()
	suite.createUser(EMAIL)
	suite.Notifier.ReturnError = true

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL})

	suite.Require().NotNil(err)
}
