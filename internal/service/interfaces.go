package service

import (
	"business-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SeederServiceInterface defines the category seeder operations
type SeederServiceInterface interface {
	SeedDefaultCategories(tenantID uuid.UUID, businessType models.BusinessType, shopType string) ([]models.InventoryCategory, error)
}

// ProvisioningServiceInterface defines the tenant signup operations
type ProvisioningServiceInterface interface {
	Signup(req *SignupRequest) (*SignupResponse, error)
}

// OnboardingServiceInterface defines the onboarding completion operations
type OnboardingServiceInterface interface {
	CompleteOnboarding(tenantID uuid.UUID, req *CompleteOnboardingRequest, logo *LogoUpload) (*TenantProfile, error)
}

// TenantServiceInterface defines tenant/membership read operations
type TenantServiceInterface interface {
	GetProfile(tenantID uuid.UUID) (*TenantProfile, error)
	ListMemberships(userID uuid.UUID) ([]MembershipResponse, error)
}

// CategoryServiceInterface defines inventory category operations
type CategoryServiceInterface interface {
	Create(tenantID uuid.UUID, req *CreateCategoryRequest) (*CategoryResponse, error)
	ListByTenant(tenantID uuid.UUID) ([]CategoryResponse, error)
}
