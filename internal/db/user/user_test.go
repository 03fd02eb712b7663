package user

import (
	c "adikart/internal/core/domain/common"
	"adikart/internal/core/domain/user"
	"adikart/internal/db"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	NAME          = "Test Customer"
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
	TOKEN_HASH    = "test-reset-token-hash"
)

var NOW time.Time = time.Date(2023, 3, 15, 12, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createUser() user.User {
	u, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Name:         NAME,
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		Role:         user.RoleUser,
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	return u
}

func (s *testSuite) createUserWithPendingReset() user.User {
	u := s.createUser()
	err := s.repo.SetResetToken(
		context.Background(),
		u.ID,
		user.ResetTokenHash(TOKEN_HASH),
		NOW.Add(user.ResetTokenValidFor),
	)
	s.Require().Nil(err)
	return u
}

func (s *testSuite) TestCreateSuccess() {
	u := s.createUser()

	assert := s.Require()
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal(NAME, u.Name)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.Equal(user.RoleUser, u.Role)
	assert.False(u.ResetTokenHash.IsPresent)
	assert.False(u.ResetTokenExpiresAt.IsPresent)
	assert.True(NOW.Equal(u.CreatedAt))
}

func (s *testSuite) TestEmailAlreadyExistsError() {
	s.createUser()

	_, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Name:         "Another Name",
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash("another-hash"),
		Role:         user.RoleUser,
		CreatedAt:    NOW,
	})
	s.Require().ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestGetByEmail() {
	created := s.createUser()

	u, err := s.repo.GetByEmail(context.Background(), c.Email(EMAIL))

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
	assert.Equal(created.PasswordHash, u.PasswordHash)
}

func (s *testSuite) TestGetByEmailNotFound() {
	_, err := s.repo.GetByEmail(context.Background(), c.Email("unknown@test.test"))
	s.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(context.Background(), user.ID(111))
	s.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestSetRole() {
	created := s.createUser()

	err := s.repo.SetRole(context.Background(), created.ID, user.RoleAdmin)
	s.Require().Nil(err)

	u, err := s.repo.GetByID(context.Background(), created.ID)
	s.Require().Nil(err)
	s.Require().Equal(user.RoleAdmin, u.Role)
}

func (s *testSuite) TestSetRoleNotFound() {
	err := s.repo.SetRole(context.Background(), user.ID(111), user.RoleAdmin)
	s.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestSetResetToken() {
	created := s.createUserWithPendingReset()

	u, err := s.repo.GetByID(context.Background(), created.ID)

	assert := s.Require()
	assert.Nil(err)
	assert.True(u.ResetTokenHash.IsPresent)
	assert.Equal(user.ResetTokenHash(TOKEN_HASH), u.ResetTokenHash.Value)
	assert.True(u.ResetTokenExpiresAt.IsPresent)
	assert.True(NOW.Add(user.ResetTokenValidFor).Equal(u.ResetTokenExpiresAt.Value))
}

func (s *testSuite) TestClearResetToken() {
	created := s.createUserWithPendingReset()

	err := s.repo.ClearResetToken(context.Background(), created.ID)
	s.Require().Nil(err)

	u, err := s.repo.GetByID(context.Background(), created.ID)
	s.Require().Nil(err)
	s.Require().False(u.ResetTokenHash.IsPresent)
	s.Require().False(u.ResetTokenExpiresAt.IsPresent)
}

func (s *testSuite) TestGetByResetTokenHash() {
	created := s.createUserWithPendingReset()

	u, err := s.repo.GetByResetTokenHash(context.Background(), user.ResetTokenHash(TOKEN_HASH), NOW)

	s.Require().Nil(err)
	s.Require().Equal(created.ID, u.ID)
}

func (s *testSuite) TestGetByResetTokenHashExpired() {
	s.createUserWithPendingReset()

	afterExpiry := NOW.Add(user.ResetTokenValidFor).Add(time.Second)
	_, err := s.repo.GetByResetTokenHash(context.Background(), user.ResetTokenHash(TOKEN_HASH), afterExpiry)

	s.Require().ErrorIs(err, user.ErrInvalidResetToken)
}

func (s *testSuite) TestGetByResetTokenHashUnknown() {
	s.createUserWithPendingReset()

	_, err := s.repo.GetByResetTokenHash(context.Background(), user.ResetTokenHash("other-hash"), NOW)

	s.Require().ErrorIs(err, user.ErrInvalidResetToken)
}

func (s *testSuite) TestUpdatePasswordByResetToken() {
	created := s.createUserWithPendingReset()

	u, err := s.repo.UpdatePasswordByResetToken(context.Background(), user.UpdatePasswordByResetTokenInput{
		TokenHash:    user.ResetTokenHash(TOKEN_HASH),
		PasswordHash: user.PasswordHash("new-password-hash"),
		Now:          NOW,
	})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
	assert.Equal(user.PasswordHash("new-password-hash"), u.PasswordHash)
	assert.False(u.ResetTokenHash.IsPresent)
	assert.False(u.ResetTokenExpiresAt.IsPresent)
}

func (s *testSuite) TestUpdatePasswordByResetTokenIsSingleUse() {
	s.createUserWithPendingReset()

	input := user.UpdatePasswordByResetTokenInput{
		TokenHash:    user.ResetTokenHash(TOKEN_HASH),
		PasswordHash: user.PasswordHash("new-password-hash"),
		Now:          NOW,
	}
	_, err := s.repo.UpdatePasswordByResetToken(context.Background(), input)
	s.Require().Nil(err)

	_, err = s.repo.UpdatePasswordByResetToken(context.Background(), input)
	s.Require().ErrorIs(err, user.ErrInvalidResetToken)
}

func (s *testSuite) TestUpdatePasswordByResetTokenExpired() {
	created := s.createUserWithPendingReset()

	_, err := s.repo.UpdatePasswordByResetToken(context.Background(), user.UpdatePasswordByResetTokenInput{
		TokenHash:    user.ResetTokenHash(TOKEN_HASH),
		PasswordHash: user.PasswordHash("new-password-hash"),
		Now:          NOW.Add(user.ResetTokenValidFor).Add(time.Second),
	})
	s.Require().ErrorIs(err, user.ErrInvalidResetToken)

	u, err := s.repo.GetByID(context.Background(), created.ID)
	s.Require().Nil(err)
	s.Require().Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
}
