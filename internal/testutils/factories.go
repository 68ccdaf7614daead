package testutils

import (
	"encoding/json"
	"time"

	"business-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	trialEnd := time.Now().AddDate(0, 1, 0)
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Tenant",
		Slug:         "test-tenant-" + id.String()[:8],
		Plan:         models.PlanTrial,
		BusinessType: models.BusinessTypePrintingPress,
		Status:       models.TenantStatusActive,
		TrialEndsAt:  &trialEnd,
	}
}

// WithName sets a custom name for the tenant
func (f *TenantFactory) WithName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	return tenant
}

// WithSlug sets a custom slug for the tenant
func (f *TenantFactory) WithSlug(slug string) *models.Tenant {
	tenant := f.Create()
	tenant.Slug = slug
	return tenant
}

// WithBusinessType sets a custom business type for the tenant
func (f *TenantFactory) WithBusinessType(businessType models.BusinessType) *models.Tenant {
	tenant := f.Create()
	tenant.BusinessType = businessType
	return tenant
}

// WithMetadata stores the given metadata document on the tenant
func (f *TenantFactory) WithMetadata(meta models.TenantMetadata) *models.Tenant {
	tenant := f.Create()
	raw, _ := json.Marshal(meta)
	tenant.Metadata = raw
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Jane Doe",
		// Unique email per instance to avoid collisions across cases
		Email:        "jane." + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         "admin",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// UserTenantFactory provides methods to create test membership data
type UserTenantFactory struct{}

// NewUserTenantFactory creates a new UserTenantFactory
func NewUserTenantFactory() *UserTenantFactory {
	return &UserTenantFactory{}
}

// Create creates a test membership with default values
func (f *UserTenantFactory) Create(tenantID, userID uuid.UUID) *models.UserTenant {
	now := time.Now()
	return &models.UserTenant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TenantID:  tenantID,
		UserID:    userID,
		Role:      models.MembershipRoleOwner,
		Status:    models.MembershipStatusActive,
		IsDefault: true,
		InvitedAt: &now,
		JoinedAt:  &now,
	}
}

// WithRole sets a custom role for the membership
func (f *UserTenantFactory) WithRole(tenantID, userID uuid.UUID, role models.MembershipRole) *models.UserTenant {
	membership := f.Create(tenantID, userID)
	membership.Role = role
	return membership
}

// SettingFactory provides methods to create test Setting data
type SettingFactory struct{}

// NewSettingFactory creates a new SettingFactory
func NewSettingFactory() *SettingFactory {
	return &SettingFactory{}
}

// Create creates a test Setting with default values
func (f *SettingFactory) Create(tenantID uuid.UUID, key string) *models.Setting {
	return &models.Setting{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    tenantID,
		Key:         key,
		Value:       json.RawMessage(`{"sample":true}`),
		Description: "Test setting",
	}
}

// InventoryCategoryFactory provides methods to create test InventoryCategory data
type InventoryCategoryFactory struct{}

// NewInventoryCategoryFactory creates a new InventoryCategoryFactory
func NewInventoryCategoryFactory() *InventoryCategoryFactory {
	return &InventoryCategoryFactory{}
}

// Create creates a test InventoryCategory with default values
func (f *InventoryCategoryFactory) Create(tenantID uuid.UUID) *models.InventoryCategory {
	id := uuid.New()
	return &models.InventoryCategory{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    tenantID,
		Name:        "Category " + id.String()[:8],
		Description: "A test inventory category",
		IsActive:    true,
	}
}

// WithName sets a custom name for the category
func (f *InventoryCategoryFactory) WithName(tenantID uuid.UUID, name string) *models.InventoryCategory {
	category := f.Create(tenantID)
	category.Name = name
	return category
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant            *TenantFactory
	User              *UserFactory
	UserTenant        *UserTenantFactory
	Setting           *SettingFactory
	InventoryCategory *InventoryCategoryFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:            NewTenantFactory(),
		User:              NewUserFactory(),
		UserTenant:        NewUserTenantFactory(),
		Setting:           NewSettingFactory(),
		InventoryCategory: NewInventoryCategoryFactory(),
	}
}
