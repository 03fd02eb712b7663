package signup

import (
	c "adikart/internal/core/domain/common"
	"adikart/internal/core/domain/logging"
	uow "adikart/internal/core/domain/unit_of_work"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	NAME         = "Ann"
	EMAIL        = c.Email("ann@x.com")
	RAW_PASSWORD = user.RawPassword("secret1")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)
}

func TestSignUpService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.Equal(NAME, result.User.Name)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal(user.RoleUser, result.User.Role)
	assert.Equal(NOW, result.User.CreatedAt)
	assert.NotEqual(user.PasswordHash(RAW_PASSWORD), result.User.PasswordHash)
	assert.False(result.User.ResetTokenHash.IsPresent)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestRoleIsNeverElevated() {
	ctx := context.Background()
	result, err := suite.Service.Run(
		ctx,
		Input{Name: "Admin", Email: c.Email("admin@adikart.com"), Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.RoleUser, result.User.Role)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	ctx := context.Background()
	suite.UnitOfWork.Context.UserRepository.Create(
		ctx,
		user.CreateUserInput{
			Name:         NAME,
			Email:        EMAIL,
			PasswordHash: user.PasswordHash("test"),
			Role:         user.RoleUser,
			CreatedAt:    NOW,
		},
	)

	_, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrEmailAlreadyExists))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
}

func (suite *testSuite) TestEmptyPasswordError() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: user.RawPassword("")})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrEmptyPassword))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
}
