package createpaymentorder

import (
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/payment"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger           *logging.FakeLogger
	Gateway          *payment.FakeGateway
	ReceiptGenerator *payment.FakeReceiptGenerator
	Service          services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Gateway = payment.NewFakeGateway()
	suite.ReceiptGenerator = payment.NewFakeReceiptGenerator("deadbeef")
	suite.Service = New(suite.Logger, suite.Gateway, suite.ReceiptGenerator)
}

func TestCreatePaymentOrderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		User:   user.User{ID: user.ID(1), Role: user.RoleUser},
		Amount: 249900,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(int64(249900), result.Order.Amount)
	assert.Equal("INR", result.Order.Currency)
	assert.Equal("deadbeef", result.Order.Receipt)
	assert.Len(suite.Gateway.Orders, 1)
}

func (suite *testSuite) TestAmountBelowMinimum() {
	_, err := suite.Service.Run(context.Background(), Input{
		User:   user.User{ID: user.ID(1), Role: user.RoleUser},
		Amount: payment.MinOrderAmount - 1,
	})

	assert := suite.Require()
	assert.True(errors.Is(err, payment.ErrInvalidAmount))
	assert.Len(suite.Gateway.Orders, 0)
}

func (suite *testSuite) TestGatewayError() {
	suite.Gateway.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{
		User:   user.User{ID: user.ID(1), Role: user.RoleUser},
		Amount: 500,
	})

	suite.Require().NotNil(err)
}
