package service_test

import (
	"errors"
	"testing"

	"business-platform-backend/internal/database/models"
	apperrors "business-platform-backend/internal/errors"
	"business-platform-backend/internal/mocks"
	"business-platform-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CategoryServiceTestSuite defines the test suite for CategoryService
type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockInventoryCategoryRepositoryInterface
	categoryService *service.CategoryService
	tenantID        uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockInventoryCategoryRepositoryInterface(suite.ctrl)
	suite.categoryService = service.NewCategoryService(suite.mockRepo, validator.New())
	suite.tenantID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *CategoryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCategory tests creating a category
func (suite *CategoryServiceTestSuite) TestCreateCategory() {
	req := &service.CreateCategoryRequest{Name: "Wide Format", Description: "Large format print media"}

	suite.mockRepo.EXPECT().
		GetByTenantAndName(suite.tenantID, "Wide Format").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *models.InventoryCategory) error {
			c.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.categoryService.Create(suite.tenantID, req)

	assert.NoError(suite.T(), err)
	require.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Wide Format", response.Name)
	assert.Equal(suite.T(), suite.tenantID, response.TenantID)
	assert.True(suite.T(), response.IsActive)
}

// TestCreateCategoryValidationError tests an invalid payload
func (suite *CategoryServiceTestSuite) TestCreateCategoryValidationError() {
	req := &service.CreateCategoryRequest{Name: ""}

	response, err := suite.categoryService.Create(suite.tenantID, req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateCategoryDuplicateName tests the per-tenant name uniqueness
func (suite *CategoryServiceTestSuite) TestCreateCategoryDuplicateName() {
	req := &service.CreateCategoryRequest{Name: "Paper"}

	suite.mockRepo.EXPECT().
		GetByTenantAndName(suite.tenantID, "Paper").
		Return(&models.InventoryCategory{TenantID: suite.tenantID, Name: "Paper"}, nil).
		Times(1)

	response, err := suite.categoryService.Create(suite.tenantID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryExists)
}

// TestCreateCategoryLostRace tests a unique violation at insert time
func (suite *CategoryServiceTestSuite) TestCreateCategoryLostRace() {
	req := &service.CreateCategoryRequest{Name: "Paper"}

	suite.mockRepo.EXPECT().
		GetByTenantAndName(suite.tenantID, "Paper").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)

	response, err := suite.categoryService.Create(suite.tenantID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryExists)
}

// TestListByTenant tests listing a tenant's categories
func (suite *CategoryServiceTestSuite) TestListByTenant() {
	suite.mockRepo.EXPECT().
		GetByTenantID(suite.tenantID).
		Return([]models.InventoryCategory{
			{TenantID: suite.tenantID, Name: "Paper", IsActive: true},
			{TenantID: suite.tenantID, Name: "Ink & Toner", IsActive: true},
		}, nil).
		Times(1)

	categories, err := suite.categoryService.ListByTenant(suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), categories, 2)
	assert.Equal(suite.T(), "Paper", categories[0].Name)
}

// TestListByTenantEmpty tests that an empty tenant lists as an empty slice
func (suite *CategoryServiceTestSuite) TestListByTenantEmpty() {
	suite.mockRepo.EXPECT().
		GetByTenantID(suite.tenantID).
		Return([]models.InventoryCategory{}, nil).
		Times(1)

	categories, err := suite.categoryService.ListByTenant(suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), categories)
	assert.Empty(suite.T(), categories)
}

// TestListByTenantError tests a repository failure
func (suite *CategoryServiceTestSuite) TestListByTenantError() {
	suite.mockRepo.EXPECT().
		GetByTenantID(suite.tenantID).
		Return(nil, errors.New("connection refused")).
		Times(1)

	categories, err := suite.categoryService.ListByTenant(suite.tenantID)

	assert.Nil(suite.T(), categories)
	assert.Error(suite.T(), err)
}

// TestCategoryServiceTestSuite runs the test suite
func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
