package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"business-platform-backend/internal/auth"
	"business-platform-backend/internal/catalog"
	"business-platform-backend/internal/config"
	"business-platform-backend/internal/database"
	"business-platform-backend/internal/database/models"
	"business-platform-backend/internal/slug"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Demo data loader: provisions tenants described in a YAML file straight into
// the database. Intended for local development and demo environments only.

type TenantData struct {
	Name         string                 `yaml:"name"`
	Plan         string                 `yaml:"plan,omitempty"`
	BusinessType string                 `yaml:"business_type"`
	ShopType     string                 `yaml:"shop_type,omitempty"`
	Owner        OwnerData              `yaml:"owner"`
	Categories   []CategoryData         `yaml:"categories,omitempty"`
	Metadata     map[string]interface{} `yaml:"metadata,omitempty"`
}

type OwnerData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type CategoryData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type SeedFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

func main() {
	var file string
	var seedDefaults bool
	flag.StringVar(&file, "file", "scripts/demo_data.yaml", "path to the YAML seed file")
	flag.BoolVar(&seedDefaults, "seed-defaults", true, "seed default categories for each tenant's business type")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Warn})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("failed to read seed file %s: %v", file, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	cat := catalog.Default()
	for _, data := range seed.Tenants {
		if err := loadTenant(db, cat, data, seedDefaults); err != nil {
			log.Printf("SKIP %s: %v", data.Name, err)
			continue
		}
		log.Printf("OK   %s", data.Name)
	}
}

func loadTenant(db *gorm.DB, cat *catalog.Catalog, data TenantData, seedDefaults bool) error {
	if data.Name == "" || data.Owner.Email == "" || data.Owner.Password == "" {
		return fmt.Errorf("name, owner email and owner password are required")
	}

	businessType := models.BusinessType(data.BusinessType)
	if !businessType.IsValid() {
		return fmt.Errorf("unknown business type %q", data.BusinessType)
	}

	plan := models.Plan(data.Plan)
	if data.Plan == "" {
		plan = models.PlanTrial
	} else if !plan.IsValid() {
		return fmt.Errorf("unknown plan %q", data.Plan)
	}

	passwordHash, err := auth.HashPassword(data.Owner.Password)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		tenantSlug := slug.Make(data.Name)
		var count int64
		if err := tx.Model(&models.Tenant{}).Where("slug = ?", tenantSlug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("slug %q already taken", tenantSlug)
		}

		now := time.Now()
		var trialEndsAt *time.Time
		if plan == models.PlanTrial {
			t := now.AddDate(0, 1, 0)
			trialEndsAt = &t
		}

		tenant := models.Tenant{
			Name:         data.Name,
			Slug:         tenantSlug,
			Plan:         plan,
			BusinessType: businessType,
			Status:       models.TenantStatusActive,
			TrialEndsAt:  trialEndsAt,
		}
		if len(data.Metadata) > 0 {
			raw, err := json.Marshal(data.Metadata)
			if err != nil {
				return err
			}
			tenant.Metadata = raw
		}
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}

		user := models.User{
			Name:         data.Owner.Name,
			Email:        strings.ToLower(strings.TrimSpace(data.Owner.Email)),
			PasswordHash: passwordHash,
			Role:         "admin",
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		membership := models.UserTenant{
			TenantID:  tenant.ID,
			UserID:    user.ID,
			Role:      models.MembershipRoleOwner,
			Status:    models.MembershipStatusActive,
			IsDefault: true,
			InvitedAt: &now,
			JoinedAt:  &now,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return err
		}

		categories := make([]models.InventoryCategory, 0)
		if seedDefaults {
			for _, tmpl := range cat.TemplatesFor(businessType, data.ShopType) {
				categories = append(categories, models.InventoryCategory{
					TenantID:    tenant.ID,
					Name:        tmpl.Name,
					Description: tmpl.Description,
					IsActive:    true,
				})
			}
		}
		for _, c := range data.Categories {
			categories = append(categories, models.InventoryCategory{
				TenantID:    tenant.ID,
				Name:        c.Name,
				Description: c.Description,
				IsActive:    true,
			})
		}
		if len(categories) > 0 {
			if err := tx.Create(&categories).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
