package createproduct

import (
	"adikart/internal/core/domain/logging"
	"adikart/internal/core/domain/product"
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	ProductRepository *product.FakeRepository
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.ProductRepository = product.NewFakeRepository()
	suite.Service = New(
		suite.Logger,
		suite.ProductRepository,
		func() time.Time { return NOW },
	)
}

func TestCreateProductService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{
		User:        user.User{ID: user.ID(1), Role: user.RoleAdmin},
		Name:        "Keyboard",
		Description: "Mechanical keyboard",
		Price:       249900,
		ImageURL:    "https://img.test/kb.png",
		Category:    "electronics",
		Stock:       10,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(product.ID(0), result.Product.ID)
	assert.Equal("Keyboard", result.Product.Name)
	assert.Equal(int64(249900), result.Product.Price)
	assert.Equal(NOW, result.Product.CreatedAt)

	stored, err := suite.ProductRepository.GetByID(ctx, result.Product.ID)
	assert.Nil(err)
	assert.Equal(result.Product, stored)
}

func (suite *testSuite) TestPermissionDeniedForNonAdmin() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{
		User: user.User{ID: user.ID(1), Role: user.RoleUser},
		Name: "Keyboard",
	})

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrPermissionDenied))

	products, listErr := suite.ProductRepository.List(ctx)
	assert.Nil(listErr)
	assert.Len(products, 0)
}
