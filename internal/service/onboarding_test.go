package service_test

import (
	"errors"
	"testing"
	"time"

	"business-platform-backend/internal/database/models"
	apperrors "business-platform-backend/internal/errors"
	"business-platform-backend/internal/mocks"
	"business-platform-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OnboardingServiceTestSuite defines the test suite for OnboardingService
type OnboardingServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTenantRepo *mocks.MockTenantRepositoryInterface
	mockSeeder     *mocks.MockSeederServiceInterface
	onboarding     *service.OnboardingService
	tenantID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OnboardingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockSeeder = mocks.NewMockSeederServiceInterface(suite.ctrl)
	suite.onboarding = service.NewOnboardingService(suite.mockTenantRepo, suite.mockSeeder)
	suite.tenantID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *OnboardingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OnboardingServiceTestSuite) existingTenant(businessType models.BusinessType) *models.Tenant {
	tenant := &models.Tenant{
		BaseModel:    models.BaseModel{ID: suite.tenantID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:         "My Workspace",
		Slug:         "my-workspace",
		Plan:         models.PlanTrial,
		BusinessType: businessType,
		Status:       models.TenantStatusActive,
	}
	require.NoError(suite.T(), tenant.SetMetadata(models.TenantMetadata{SignupSource: "self_service"}))
	return tenant
}

// TestCompleteOnboardingMissingTenantContext tests calling without a resolved tenant
func (suite *OnboardingServiceTestSuite) TestCompleteOnboardingMissingTenantContext() {
	profile, err := suite.onboarding.CompleteOnboarding(uuid.Nil, &service.CompleteOnboardingRequest{}, nil)

	assert.Nil(suite.T(), profile)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantContextMissing)
}

// TestCompleteOnboardingTenantNotFound tests the unknown-tenant path
func (suite *OnboardingServiceTestSuite) TestCompleteOnboardingTenantNotFound() {
	suite.mockTenantRepo.EXPECT().
		GetByID(suite.tenantID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	profile, err := suite.onboarding.CompleteOnboarding(suite.tenantID, &service.CompleteOnboardingRequest{}, nil)

	assert.Nil(suite.T(), profile)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantNotFound)
}

// TestCompleteOnboardingMergesMetadata tests the metadata merge without a type change
func (suite *OnboardingServiceTestSuite) TestCompleteOnboardingMergesMetadata() {
	tenant := suite.existingTenant(models.BusinessTypePrintingPress)

	suite.mockTenantRepo.EXPECT().GetByID(suite.tenantID).Return(tenant, nil).Times(1)

	var updated *models.Tenant
	suite.mockTenantRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(t *models.Tenant) error {
			updated = t
			return nil
		}).
		Times(1)

	req := &service.CompleteOnboardingRequest{
		Industry:     "Commercial printing",
		CompanyEmail: "press@acme.example",
		CompanyPhone: "+233200000000",
	}

	// No businessType in the request: no re-seed.
	profile, err := suite.onboarding.CompleteOnboarding(suite.tenantID, req, nil)

	assert.NoError(suite.T(), err)
	require.NotNil(suite.T(), profile)
	assert.Equal(suite.T(), suite.tenantID, profile.ID)
	assert.Equal(suite.T(), models.BusinessTypePrintingPress, profile.BusinessType)

	meta, err := updated.GetMetadata()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "self_service", meta.SignupSource)
	require.NotNil(suite.T(), meta.Onboarding)
	assert.Equal(suite.T(), "Commercial printing", meta.Onboarding.Industry)
	assert.NotNil(suite.T(), meta.Onboarding.CompletedAt)
	require.NotNil(suite.T(), meta.Email)
	assert.Equal(suite.T(), "press@acme.example", *meta.Email)
	require.NotNil(suite.T(), meta.Phone)
	assert.Equal(suite.T(), "+233200000000", *meta.Phone)
}

// TestCompleteOnboardingReseedsOnTypeChange tests the re-seed trigger
func (suite *OnboardingServiceTestSuite) TestCompleteOnboardingReseedsOnTypeChange() {
	tenant := suite.existingTenant(models.BusinessTypePrintingPress)

	suite.mockTenantRepo.EXPECT().GetByID(suite.tenantID).Return(tenant, nil).Times(1)
	suite.mockTenantRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	suite.mockSeeder.EXPECT().
		SeedDefaultCategories(suite.tenantID, models.BusinessTypeShop, "bookstore").
		Return([]models.InventoryCategory{}, nil).
		Times(1)

	req := &service.CompleteOnboardingRequest{
		BusinessType: "shop",
		ShopType:     "bookstore",
		CompanyName:  "Adinkra Books",
	}

	profile, err := suite.onboarding.CompleteOnboarding(suite.tenantID, req, nil)

	assert.NoError(suite.T(), err)
	require.NotNil(suite.T(), profile)
	assert.Equal(suite.T(), "Adinkra Books", profile.Name)
	assert.Equal(suite.T(), models.BusinessTypeShop, profile.BusinessType)
}

// TestCompleteOnboardingSameTypeSkipsReseed tests that restating the current type seeds nothing
func (suite *OnboardingServiceTestSuite) TestCompleteOnboardingSameTypeSkipsReseed() {
	tenant := suite.existingTenant(models.BusinessTypePharmacy)

	suite.mockTenantRepo.EXPECT().GetByID(suite.tenantID).Return(tenant, nil).Times(1)
	suite.mockTenantRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	req := &service.CompleteOnboardingRequest{BusinessType: "pharmacy"}

	profile, err := suite.onboarding.CompleteOnboarding(suite.tenantID, req, nil)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), profile)
}

// TestCompleteOnboardingUnknownBusinessType tests validation of the new type
func (suite *OnboardingServiceTestSuite) TestCompleteOnboardingUnknownBusinessType() {
	tenant := suite.existingTenant(models.BusinessTypePrintingPress)

	suite.mockTenantRepo.EXPECT().GetByID(suite.tenantID).Return(tenant, nil).Times(1)

	req := &service.CompleteOnboardingRequest{BusinessType: "food_truck"}

	profile, err := suite.onboarding.CompleteOnboarding(suite.tenantID, req, nil)

	assert.Nil(suite.T(), profile)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCompleteOnboardingStoresLogo tests the logo data URI encoding
func (suite *OnboardingServiceTestSuite) TestCompleteOnboardingStoresLogo() {
	tenant := suite.existingTenant(models.BusinessTypePrintingPress)

	suite.mockTenantRepo.EXPECT().GetByID(suite.tenantID).Return(tenant, nil).Times(1)

	var updated *models.Tenant
	suite.mockTenantRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(t *models.Tenant) error {
			updated = t
			return nil
		}).
		Times(1)

	logo := &service.LogoUpload{ContentType: "image/png", Data: []byte{0x89, 0x50, 0x4e, 0x47}}

	_, err := suite.onboarding.CompleteOnboarding(suite.tenantID, &service.CompleteOnboardingRequest{}, logo)
	assert.NoError(suite.T(), err)

	meta, err := updated.GetMetadata()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "data:image/png;base64,iVBORw==", meta.Logo)
}

// TestCompleteOnboardingSurvivesReseedFailure tests that seeding failure never fails the call
func (suite *OnboardingServiceTestSuite) TestCompleteOnboardingSurvivesReseedFailure() {
	tenant := suite.existingTenant(models.BusinessTypePrintingPress)

	suite.mockTenantRepo.EXPECT().GetByID(suite.tenantID).Return(tenant, nil).Times(1)
	suite.mockTenantRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	suite.mockSeeder.EXPECT().
		SeedDefaultCategories(suite.tenantID, models.BusinessTypePharmacy, "").
		Return(nil, errors.New("seeding backend down")).
		Times(1)

	req := &service.CompleteOnboardingRequest{BusinessType: "pharmacy"}

	profile, err := suite.onboarding.CompleteOnboarding(suite.tenantID, req, nil)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), profile)
}

// TestOnboardingServiceTestSuite runs the test suite
func TestOnboardingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingServiceTestSuite))
}
