package repository

import (
	"testing"

	"business-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite tests the TenantRepository
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateTx tests creating a tenant inside a transaction
func (suite *TenantRepositoryTestSuite) TestCreateTx() {
	tenant := suite.factories.Tenant.Create()

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		return suite.repo.CreateTx(tx, tenant)
	})

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, tenant.ID)
	suite.NotZero(tenant.CreatedAt)
}

// TestCreateTxRollsBack tests that a failed transaction leaves no tenant behind
func (suite *TenantRepositoryTestSuite) TestCreateTxRollsBack() {
	tenant := suite.factories.Tenant.Create()

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		if err := suite.repo.CreateTx(tx, tenant); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	suite.Error(err)

	_, err = suite.repo.GetByID(tenant.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCreateTxDuplicateSlug tests the slug unique constraint
func (suite *TenantRepositoryTestSuite) TestCreateTxDuplicateSlug() {
	first := suite.factories.Tenant.WithSlug("acme-press")
	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		return suite.repo.CreateTx(tx, first)
	})
	suite.NoError(err)

	second := suite.factories.Tenant.WithSlug("acme-press")
	err = suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		return suite.repo.CreateTx(tx, second)
	})

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestGetByID tests retrieving a tenant by ID
func (suite *TenantRepositoryTestSuite) TestGetByID() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	retrieved, err := suite.repo.GetByID(tenant.ID)

	suite.NoError(err)
	suite.Equal(tenant.ID, retrieved.ID)
	suite.Equal(tenant.Slug, retrieved.Slug)
}

// TestGetByIDNotFound tests retrieving a missing tenant
func (suite *TenantRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.Nil(retrieved)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetBySlug tests retrieving a tenant by slug
func (suite *TenantRepositoryTestSuite) TestGetBySlug() {
	tenant := suite.factories.Tenant.WithSlug("corner-shop")
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	retrieved, err := suite.repo.GetBySlug("corner-shop")

	suite.NoError(err)
	suite.Equal(tenant.ID, retrieved.ID)
}

// TestSlugExistsTx tests the in-transaction slug availability check
func (suite *TenantRepositoryTestSuite) TestSlugExistsTx() {
	tenant := suite.factories.Tenant.WithSlug("taken-slug")
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := suite.repo.SlugExistsTx(tx, "taken-slug")
		suite.NoError(err)
		suite.True(taken)

		free, err := suite.repo.SlugExistsTx(tx, "free-slug")
		suite.NoError(err)
		suite.False(free)
		return nil
	})
	suite.NoError(err)
}

// TestUpdate tests persisting tenant changes
func (suite *TenantRepositoryTestSuite) TestUpdate() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	tenant.Name = "Renamed Workspace"
	suite.NoError(suite.repo.Update(tenant))

	retrieved, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.Equal("Renamed Workspace", retrieved.Name)
}

// TestTenantRepositoryTestSuite runs the test suite
func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
