package service

import (
	"errors"

	"business-platform-backend/internal/catalog"
	"business-platform-backend/internal/database/models"
	"business-platform-backend/internal/logger"
	"business-platform-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeederService materializes the business-type category catalog as
// tenant-scoped inventory category rows. Seeding is best-effort: a failure on
// one template never aborts the rest of the batch, and re-running for the
// same tenant is a no-op for categories that already exist.
type SeederService struct {
	categoryRepo repository.InventoryCategoryRepositoryInterface
	catalog      *catalog.Catalog
	log          *logger.Logger
}

// NewSeederService creates a new category seeder
func NewSeederService(categoryRepo repository.InventoryCategoryRepositoryInterface, cat *catalog.Catalog) *SeederService {
	return &SeederService{
		categoryRepo: categoryRepo,
		catalog:      cat,
		log:          logger.New().WithField("component", "category-seeder"),
	}
}

// SeedDefaultCategories creates the default inventory categories for a tenant
// classification. Returns only the categories created by this call;
// pre-existing ones are left untouched.
func (s *SeederService) SeedDefaultCategories(tenantID uuid.UUID, businessType models.BusinessType, shopType string) ([]models.InventoryCategory, error) {
	templates := s.catalog.TemplatesFor(businessType, shopType)

	log := s.log.WithFields(map[string]interface{}{
		"tenant_id":     tenantID,
		"business_type": businessType,
	})

	created := make([]models.InventoryCategory, 0, len(templates))
	for _, tmpl := range templates {
		existing, err := s.categoryRepo.GetByTenantAndName(tenantID, tmpl.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithField("category", tmpl.Name).Warnf("skipping category, lookup failed: %v", err)
			continue
		}
		if existing != nil {
			log.WithField("category", tmpl.Name).Debug("category already exists")
			continue
		}

		category := models.InventoryCategory{
			TenantID:    tenantID,
			Name:        tmpl.Name,
			Description: tmpl.Description,
			IsActive:    true,
		}
		if err := s.categoryRepo.Create(&category); err != nil {
			if repository.IsUniqueViolation(err) {
				// A concurrent seeder won the race on (tenant_id, name).
				log.WithField("category", tmpl.Name).Debug("category created concurrently")
				continue
			}
			log.WithField("category", tmpl.Name).Warnf("skipping category, create failed: %v", err)
			continue
		}

		log.WithField("category", tmpl.Name).Info("created default category")
		created = append(created, category)
	}

	return created, nil
}
