package resetpassword

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
	EMAIL        = c.Email("ann@x.com")
	OLD_PASSWORD = user.RawPassword("secret1")
	NEW_PASSWORD = user.RawPassword("another-secret")
	RESET_TOKEN  = user.ResetToken("test-reset-token")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	TokenHasher    *user.FakeResetTokenHasher
	PasswordHasher *user.FakePasswordHasher
	Now            time.Time
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.TokenHasher = user.NewFakeResetTokenHasher()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Now = NOW
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.TokenHasher,
		suite.PasswordHasher,
		func() time.Time { return suite.Now },
	)
}

func TestResetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUserWithPendingReset() user.User {
	ctx := context.Background()
	passwordHash, _ := suite.PasswordHasher.HashPassword(OLD_PASSWORD)
	u, err := suite.UserRepository.Create(ctx, user.CreateUserInput{
		Name:         "Ann",
		Email:        EMAIL,
		PasswordHash: passwordHash,
		Role:         user.RoleUser,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	err = suite.UserRepository.SetResetToken(
		ctx,
		u.ID,
		suite.TokenHasher.HashResetToken(RESET_TOKEN),
		NOW.Add(user.ResetTokenValidFor),
	)
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestSuccess() {
	created := suite.createUserWithPendingReset()

	_, err := suite.Service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: NEW_PASSWORD},
	)

	assert := suite.Require()
	assert.Nil(err)

	u, err := suite.UserRepository.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.True(suite.PasswordHasher.ValidatePassword(NEW_PASSWORD, u.PasswordHash))
	assert.False(suite.PasswordHasher.ValidatePassword(OLD_PASSWORD, u.PasswordHash))
	assert.False(u.ResetTokenHash.IsPresent)
	assert.False(u.ResetTokenExpiresAt.IsPresent)
}

func (suite *testSuite) TestTokenIsSingleUse() {
	suite.createUserWithPendingReset()

	_, err := suite.Service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: NEW_PASSWORD},
	)
	suite.Require().Nil(err)

	_, err = suite.Service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: user.RawPassword("yet-another")},
	)
	suite.Require().True(errors.Is(err, user.ErrInvalidResetToken))
}

func (suite *testSuite) TestUnknownToken() {
	suite.createUserWithPendingReset()

	_, err := suite.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken("wrong-token"), NewPassword: NEW_PASSWORD},
	)

	suite.Require().True(errors.Is(err, user.ErrInvalidResetToken))
}

func (suite *testSuite) TestExpiredToken() {
	created := suite.createUserWithPendingReset()
	suite.Now = NOW.Add(user.ResetTokenValidFor + time.Second)

	_, err := suite.Service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: NEW_PASSWORD},
	)

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrInvalidResetToken))

	// The old password still verifies.
	u, getErr := suite.UserRepository.GetByID(context.Background(), created.ID)
	assert.Nil(getErr)
	assert.True(suite.PasswordHasher.ValidatePassword(OLD_PASSWORD, u.PasswordHash))
}

func (suite *testSuite) TestWeakPasswordLeavesTokenUsable() {
	created := suite.createUserWithPendingReset()

	_, err := suite.Service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: user.RawPassword("short")},
	)

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrPasswordTooWeak))

	u, getErr := suite.UserRepository.GetByID(context.Background(), created.ID)
	assert.Nil(getErr)
	assert.True(u.ResetTokenHash.IsPresent)
	assert.True(suite.PasswordHasher.ValidatePassword(OLD_PASSWORD, u.PasswordHash))

	// The same token still completes the reset afterwards.
	_, err = suite.Service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: NEW_PASSWORD},
	)
	assert.Nil(err)
}

func (suite *testSuite) TestSupersededTokenFails() {
	created := suite.createUserWithPendingReset()
	err := suite.UserRepository.SetResetToken(
		context.Background(),
		created.ID,
		suite.TokenHasher.HashResetToken(user.ResetToken("newer-token")),
		NOW.Add(user.ResetTokenValidFor),
	)
	suite.Require().Nil(err)

	_, err = suite.Service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: NEW_PASSWORD},
	)
	suite.Require().True(errors.Is(err, user.ErrInvalidResetToken))

	_, err = suite.Service.Run(
		context.Background(),
		Input{Token: user.ResetToken("newer-token"), NewPassword: NEW_PASSWORD},
	)
	suite.Require().Nil(err)
}
