package logout

import (
	c "adikart/internal/core/domain/common"
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const SESSION_TOKEN = user.SessionToken("test-session-token")

type testSuite struct {
	suite.Suite
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.Service = New(logging.NewFakeLogger(), suite.SessionRepository)
}

func TestLogOutService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	u, err := suite.UserRepository.Create(ctx, user.CreateUserInput{
		Name:         "Ann",
		Email:        c.Email("ann@x.com"),
		PasswordHash: user.PasswordHash("test"),
		Role:         user.RoleUser,
		CreatedAt:    time.Now().UTC(),
	})
	suite.Require().Nil(err)
	suite.SessionRepository.Create(ctx, user.CreateSessionInput{
		UserID:    u.ID,
		Token:     SESSION_TOKEN,
		CreatedAt: time.Now().UTC(),
	})

	_, err = suite.Service.Run(ctx, Input{Token: SESSION_TOKEN})

	assert := suite.Require()
	assert.Nil(err)
	_, err = suite.SessionRepository.GetUserByToken(ctx, SESSION_TOKEN)
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestSessionDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{Token: SESSION_TOKEN})

	suite.Require().True(errors.Is(err, user.ErrSessionDoesNotExist))
}
