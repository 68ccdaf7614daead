package repository

import (
	"testing"

	"business-platform-backend/internal/database/models"
	"business-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserTenantRepositoryTestSuite tests the UserTenantRepository
type UserTenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserTenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserTenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserTenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserTenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserTenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserTenantRepositoryTestSuite) seedTenantAndUser() (*models.Tenant, *models.User) {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	return tenant, user
}

// TestCreateTx tests creating a membership inside a transaction
func (suite *UserTenantRepositoryTestSuite) TestCreateTx() {
	tenant, user := suite.seedTenantAndUser()
	membership := suite.factories.UserTenant.Create(tenant.ID, user.ID)

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		return suite.repo.CreateTx(tx, membership)
	})

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, membership.ID)
}

// TestCreateTxDuplicatePair tests the one-membership-per-pair constraint
func (suite *UserTenantRepositoryTestSuite) TestCreateTxDuplicatePair() {
	tenant, user := suite.seedTenantAndUser()

	first := suite.factories.UserTenant.Create(tenant.ID, user.ID)
	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		return suite.repo.CreateTx(tx, first)
	})
	suite.NoError(err)

	second := suite.factories.UserTenant.Create(tenant.ID, user.ID)
	err = suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		return suite.repo.CreateTx(tx, second)
	})

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestGetByUserID tests listing memberships with preloaded tenants, default first
func (suite *UserTenantRepositoryTestSuite) TestGetByUserID() {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	firstTenant := suite.factories.Tenant.WithName("First Workspace")
	suite.NoError(suite.baseTestSuite.DB.Create(firstTenant).Error)
	secondTenant := suite.factories.Tenant.WithName("Second Workspace")
	suite.NoError(suite.baseTestSuite.DB.Create(secondTenant).Error)

	// The non-default membership is created first; ordering must still put
	// the default one on top.
	nonDefault := suite.factories.UserTenant.WithRole(firstTenant.ID, user.ID, models.MembershipRoleStaff)
	nonDefault.IsDefault = false
	suite.NoError(suite.baseTestSuite.DB.Create(nonDefault).Error)

	defaultMembership := suite.factories.UserTenant.Create(secondTenant.ID, user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(defaultMembership).Error)

	memberships, err := suite.repo.GetByUserID(user.ID)

	suite.NoError(err)
	suite.Len(memberships, 2)
	suite.True(memberships[0].IsDefault)
	suite.Equal("Second Workspace", memberships[0].Tenant.Name)
	suite.False(memberships[1].IsDefault)
	suite.Equal("First Workspace", memberships[1].Tenant.Name)
}

// TestGetByUserIDEmpty tests a user without memberships
func (suite *UserTenantRepositoryTestSuite) TestGetByUserIDEmpty() {
	memberships, err := suite.repo.GetByUserID(uuid.New())

	suite.NoError(err)
	suite.Empty(memberships)
}

// TestGetByTenantAndUser tests looking up a single membership pair
func (suite *UserTenantRepositoryTestSuite) TestGetByTenantAndUser() {
	tenant, user := suite.seedTenantAndUser()
	membership := suite.factories.UserTenant.Create(tenant.ID, user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(membership).Error)

	retrieved, err := suite.repo.GetByTenantAndUser(tenant.ID, user.ID)

	suite.NoError(err)
	suite.Equal(membership.ID, retrieved.ID)

	_, err = suite.repo.GetByTenantAndUser(tenant.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserTenantRepositoryTestSuite runs the test suite
func TestUserTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserTenantRepositoryTestSuite))
}
