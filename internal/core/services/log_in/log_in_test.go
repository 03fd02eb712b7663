package login

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

const (
	NAME          = "Ann"
	EMAIL         = c.Email("ann@x.com")
	RAW_PASSWORD  = user.RawPassword("secret1")
	SESSION_TOKEN = "test-session-token"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger                *logging.FakeLogger
	UserRepository        *user.FakeUserRepository
	SessionRepository     *user.FakeSessionRepository
	PasswordHasher        *user.FakePasswordHasher
	SessionTokenGenerator *user.FakeSessionTokenGenerator
	Service               services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.SessionTokenGenerator = user.NewFakeSessionTokenGenerator(SESSION_TOKEN)
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.SessionRepository,
		suite.PasswordHasher,
		suite.SessionTokenGenerator,
		func() time.Time { return NOW },
	)
}

func TestLogInService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser() user.User {
	passwordHash, _ := suite.PasswordHasher.HashPassword(RAW_PASSWORD)
	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Name:         NAME,
		Email:        EMAIL,
		PasswordHash: passwordHash,
		Role:         user.RoleUser,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestSuccess() {
	created := suite.createUser()

	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, result.User.ID)
	assert.Equal(NAME, result.User.Name)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal(user.RoleUser, result.User.Role)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.Token)

	sessionUser, err := suite.SessionRepository.GetUserByToken(context.Background(), result.Token)
	assert.Nil(err)
	assert.Equal(created.ID, sessionUser.ID)
}

func (suite *testSuite) TestUserDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrInvalidCredentials))
}

func (suite *testSuite) TestInvalidPassword() {
	suite.createUser()

	_, err := suite.Service.Run(
		context.Background(),
		Input{Email: EMAIL, Password: user.RawPassword("wrong")},
	)

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrInvalidCredentials))
}

func (suite *testSuite) TestUnknownEmailAndWrongPasswordAreIndistinguishable() {
	suite.createUser()

	_, errWrongPassword := suite.Service.Run(
		context.Background(),
		Input{Email: EMAIL, Password: user.RawPassword("wrong")},
	)
	_, errUnknownEmail := suite.Service.Run(
		context.Background(),
		Input{Email: c.Email("nobody@x.com"), Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.Equal(errWrongPassword, errUnknownEmail)
}

func (suite *testSuite) TestUnknownEmailStillHashes() {
	hashCallsBefore := suite.PasswordHasher.HashCalls

	suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	suite.Require().Equal(hashCallsBefore+1, suite.PasswordHasher.HashCalls)
}

func (suite *testSuite) TestSessionCreateError() {
	suite.createUser()
	suite.SessionRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	suite.Require().NotNil(err)
	suite.Require().False(errors.Is(err, user.ErrInvalidCredentials))
}
