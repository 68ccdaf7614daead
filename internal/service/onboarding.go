package service

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"business-platform-backend/internal/database/models"
	apperrors "business-platform-backend/internal/errors"
	"business-platform-backend/internal/logger"
	"business-platform-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OnboardingService applies post-signup business details to a tenant and
// re-seeds default categories when the business type actually changes.
type OnboardingService struct {
	tenantRepo repository.TenantRepositoryInterface
	seeder     SeederServiceInterface
	log        *logger.Logger
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(tenantRepo repository.TenantRepositoryInterface, seeder SeederServiceInterface) *OnboardingService {
	return &OnboardingService{
		tenantRepo: tenantRepo,
		seeder:     seeder,
		log:        logger.New().WithField("component", "onboarding"),
	}
}

// CompleteOnboardingRequest carries the optional business details collected
// after signup. Empty fields are left untouched on the tenant.
type CompleteOnboardingRequest struct {
	BusinessType   string `form:"businessType" json:"businessType"`
	ShopType       string `form:"shopType" json:"shopType"`
	Industry       string `form:"industry" json:"industry"`
	CompanyName    string `form:"companyName" json:"companyName"`
	CompanyEmail   string `form:"companyEmail" json:"companyEmail"`
	CompanyPhone   string `form:"companyPhone" json:"companyPhone"`
	CompanyWebsite string `form:"companyWebsite" json:"companyWebsite"`
	CompanyAddress string `form:"companyAddress" json:"companyAddress"`
}

// LogoUpload is an uploaded logo image, stored as a data URI in metadata
type LogoUpload struct {
	ContentType string
	Data        []byte
}

// TenantProfile is the reduced tenant view returned by onboarding and lookup
type TenantProfile struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	BusinessType models.BusinessType `json:"business_type"`
	Metadata     json.RawMessage     `json:"metadata"`
}

// CompleteOnboarding merges the supplied business details into the tenant's
// metadata and, when the business type changed, seeds the matching default
// categories. Seeding failures are logged and never fail the call.
func (s *OnboardingService) CompleteOnboarding(tenantID uuid.UUID, req *CompleteOnboardingRequest, logo *LogoUpload) (*TenantProfile, error) {
	if tenantID == uuid.Nil {
		return nil, apperrors.ErrTenantContextMissing
	}

	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	// The re-seed decision compares against the value the tenant had before
	// this call mutates it.
	previousType := tenant.BusinessType

	meta, err := tenant.GetMetadata()
	if err != nil {
		return nil, fmt.Errorf("failed to decode tenant metadata: %w", err)
	}

	now := time.Now()
	if meta.Onboarding == nil {
		meta.Onboarding = &models.OnboardingMeta{}
	}
	if req.Industry != "" {
		meta.Onboarding.Industry = req.Industry
	}
	meta.Onboarding.CompletedAt = &now

	if v := optionalString(req.CompanyEmail); v != nil {
		meta.Email = v
	}
	if v := optionalString(req.CompanyPhone); v != nil {
		meta.Phone = v
	}
	if v := optionalString(req.CompanyWebsite); v != nil {
		meta.Website = v
	}
	if v := optionalString(req.CompanyAddress); v != nil {
		meta.Address = v
	}
	if logo != nil && len(logo.Data) > 0 {
		meta.Logo = fmt.Sprintf("data:%s;base64,%s", logo.ContentType, base64.StdEncoding.EncodeToString(logo.Data))
	}

	newType := models.BusinessType(req.BusinessType)
	if req.BusinessType != "" {
		if !newType.IsValid() {
			return nil, apperrors.NewValidationError("businessType", "unknown business type")
		}
		if name := strings.TrimSpace(req.CompanyName); name != "" {
			tenant.Name = name
		}
		tenant.BusinessType = newType
		if newType == models.BusinessTypeShop && req.ShopType != "" {
			meta.ShopType = req.ShopType
		}
	}

	if err := tenant.SetMetadata(meta); err != nil {
		return nil, fmt.Errorf("failed to encode tenant metadata: %w", err)
	}
	if err := s.tenantRepo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	if req.BusinessType != "" && newType != previousType {
		if _, err := s.seeder.SeedDefaultCategories(tenant.ID, newType, req.ShopType); err != nil {
			s.log.WithField("tenant_id", tenant.ID).Errorf("category re-seeding failed: %v", err)
		}
	}

	return &TenantProfile{
		ID:           tenant.ID,
		Name:         tenant.Name,
		BusinessType: tenant.BusinessType,
		Metadata:     tenant.Metadata,
	}, nil
}
