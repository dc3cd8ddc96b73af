package productrepo_test

import (
	"context"
	"testing"
	"time"

	"retailedge/internal/adapters/out/postgres/productrepo"
	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/product"
	"retailedge/internal/core/ports"
	"retailedge/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository, including the unique-name constraint behavior.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *pgcontainer.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// DriverName pins database/sql to lib/pq so the unique violation
	// translation sees the driver error type it expects.
	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		DriverName: "postgres",
		DSN:        connStr,
	}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db, noopTracker{})
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Oak Bookshelf", "Furniture")
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	loaded, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), loaded.ID())
	suite.Equal("Oak Bookshelf", loaded.Name())
	suite.True(testProduct.Price().IsEqual(loaded.Price()))
	suite.True(loaded.InStock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_DuplicateName_ReturnsAlreadyExists() {
	ctx := context.Background()

	first := suite.createTestProduct("Oak Bookshelf", "Furniture")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.createTestProduct("Oak Bookshelf", "Office")
	err := suite.repository.Add(ctx, duplicate)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_RenameToTakenName_ReturnsAlreadyExists() {
	ctx := context.Background()

	first := suite.createTestProduct("Oak Bookshelf", "Furniture")
	second := suite.createTestProduct("Walnut Bookshelf", "Furniture")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.Require().NoError(second.UpdateDetails(
		"Oak Bookshelf", second.Description(), second.Price(), second.Category(), second.InStock(), second.ImageURL()))
	err := suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestExistsByName_ExcludesOwnRow() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Oak Bookshelf", "Furniture")
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	taken, err := suite.repository.ExistsByName(ctx, "Oak Bookshelf", testProduct.ID())
	suite.Require().NoError(err)
	suite.False(taken, "a product's own row must not count as a collision")

	taken, err = suite.repository.ExistsByName(ctx, "Oak Bookshelf", kernel.NewUUID())
	suite.Require().NoError(err)
	suite.True(taken)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAll_Filters() {
	ctx := context.Background()

	shelf := suite.createTestProduct("Oak Bookshelf", "Furniture")
	mug := suite.createTestProduct("Ceramic Mug", "Kitchen")
	suite.Require().NoError(suite.repository.Add(ctx, shelf))
	suite.Require().NoError(suite.repository.Add(ctx, mug))

	byCategory, err := suite.repository.GetAll(ctx, ports.ProductFilter{Category: "Kitchen"})
	suite.Require().NoError(err)
	suite.Require().Len(byCategory, 1)
	suite.Equal("Ceramic Mug", byCategory[0].Name())

	byName, err := suite.repository.GetAll(ctx, ports.ProductFilter{NameContains: "book"})
	suite.Require().NoError(err)
	suite.Require().Len(byName, 1)
	suite.Equal("Oak Bookshelf", byName[0].Name())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAll_NameContains_TreatsWildcardsAsLiterals() {
	ctx := context.Background()

	cotton := suite.createTestProduct("100% Cotton Tote", "Accessories")
	plain := suite.createTestProduct("Canvas Totes", "Accessories")
	underscored := suite.createTestProduct("tote_bag refill", "Accessories")
	suite.Require().NoError(suite.repository.Add(ctx, cotton))
	suite.Require().NoError(suite.repository.Add(ctx, plain))
	suite.Require().NoError(suite.repository.Add(ctx, underscored))

	byPercent, err := suite.repository.GetAll(ctx, ports.ProductFilter{NameContains: "%"})
	suite.Require().NoError(err)
	suite.Require().Len(byPercent, 1)
	suite.Equal("100% Cotton Tote", byPercent[0].Name())

	byUnderscore, err := suite.repository.GetAll(ctx, ports.ProductFilter{NameContains: "tote_"})
	suite.Require().NoError(err)
	suite.Require().Len(byUnderscore, 1)
	suite.Equal("tote_bag refill", byUnderscore[0].Name())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete_RemovesProduct() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Oak Bookshelf", "Furniture")
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	suite.Require().NoError(suite.repository.Delete(ctx, testProduct.ID()))

	exists, err := suite.repository.Exists(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(name, category string) *product.Product {
	price, err := kernel.MoneyFromString("49.99")
	suite.Require().NoError(err)

	testProduct, err := product.NewProduct(kernel.NewUUID(), name, "", price, category, true, "")
	suite.Require().NoError(err)
	return testProduct
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
