package getuserbysessiontoken

import (
	c "adikart/internal/core/domain/common"
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const TOKEN = "test-session-token"

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.Service = New(suite.Logger, suite.SessionRepository)
}

func TestGetUserBySessionTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	u, err := suite.UserRepository.Create(ctx, user.CreateUserInput{
		Name:         "Test Customer",
		Email:        c.Email("test@test.test"),
		PasswordHash: user.PasswordHash("test-hash"),
		Role:         user.RoleUser,
		CreatedAt:    time.Now().UTC(),
	})
	suite.Require().Nil(err)
	err = suite.SessionRepository.Create(ctx, user.CreateSessionInput{
		UserID: u.ID,
		Token:  user.SessionToken(TOKEN),
	})
	suite.Require().Nil(err)

	result, err := suite.Service.Run(ctx, Input{Token: user.SessionToken(TOKEN)})

	suite.Require().Nil(err)
	suite.Require().Equal(u, result.User)
}

func (suite *testSuite) TestUnknownToken() {
	_, err := suite.Service.Run(context.Background(), Input{Token: user.SessionToken(TOKEN)})

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}
