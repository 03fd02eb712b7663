package provisionadmin

import (
	c "adikart/internal/core/domain/common"
	"adikart/internal/core/domain/logging"
	uow "adikart/internal/core/domain/unit_of_work"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	NAME         = "Admin"
	EMAIL        = c.Email("admin@adikart.com")
	RAW_PASSWORD = user.RawPassword("admin-secret")
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

func TestProvisionAdminService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreatesAdminWhenMissing() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.RoleAdmin, result.User.Role)
	assert.Equal(EMAIL, result.User.Email)
	assert.True(suite.PasswordHasher.ValidatePassword(RAW_PASSWORD, result.User.PasswordHash))
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestExistingAdminIsLeftAlone() {
	ctx := context.Background()
	passwordHash, _ := suite.PasswordHasher.HashPassword(RAW_PASSWORD)
	created, err := suite.UnitOfWork.Context.UserRepository.Create(ctx, user.CreateUserInput{
		Name:         NAME,
		Email:        EMAIL,
		PasswordHash: passwordHash,
		Role:         user.RoleAdmin,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)

	result, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, result.User.ID)
	assert.Equal(passwordHash, result.User.PasswordHash)
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestRepairsDemotedAdmin() {
	ctx := context.Background()
	passwordHash, _ := suite.PasswordHasher.HashPassword(RAW_PASSWORD)
	created, err := suite.UnitOfWork.Context.UserRepository.Create(ctx, user.CreateUserInput{
		Name:         NAME,
		Email:        EMAIL,
		PasswordHash: passwordHash,
		Role:         user.RoleUser,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)

	result, err := suite.Service.Run(ctx, Input{Name: NAME, Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, result.User.ID)
	assert.Equal(user.RoleAdmin, result.User.Role)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)

	stored, err := suite.UnitOfWork.Context.UserRepository.GetByID(ctx, created.ID)
	assert.Nil(err)
	assert.Equal(user.RoleAdmin, stored.Role)
	// The existing password is never overwritten.
	assert.Equal(passwordHash, stored.PasswordHash)
}
