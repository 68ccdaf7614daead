package models

import (
	"encoding/json"
	"time"
)

// Tenant represents an isolated customer workspace. All business data is
// scoped to one tenant; the slug is the URL-safe external identifier and is
// immutable once assigned.
type Tenant struct {
	BaseModel
	Name         string          `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Slug         string          `json:"slug" gorm:"uniqueIndex;not null;size:150" validate:"required,max=150"`
	Plan         Plan            `json:"plan" gorm:"type:varchar(50);not null;default:'trial'"`
	BusinessType BusinessType    `json:"business_type" gorm:"type:varchar(50);not null;default:'printing_press'"`
	Status       TenantStatus    `json:"status" gorm:"type:varchar(50);not null;default:'active'"`
	Metadata     json.RawMessage `json:"metadata" gorm:"type:jsonb"`
	TrialEndsAt  *time.Time      `json:"trial_ends_at,omitempty"`

	// Relationships
	Memberships []UserTenant        `json:"memberships,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Settings    []Setting           `json:"settings,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Categories  []InventoryCategory `json:"categories,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// TenantMetadata is the structured shape stored in Tenant.Metadata.
type TenantMetadata struct {
	Website      *string         `json:"website"`
	Email        *string         `json:"email"`
	Phone        *string         `json:"phone"`
	Address      *string         `json:"address,omitempty"`
	SignupSource string          `json:"signupSource,omitempty"`
	ShopType     string          `json:"shopType,omitempty"`
	BusinessInfo json.RawMessage `json:"businessInfo,omitempty"`
	Logo         string          `json:"logo,omitempty"`
	Onboarding   *OnboardingMeta `json:"onboarding,omitempty"`
}

// OnboardingMeta records onboarding progress inside tenant metadata.
type OnboardingMeta struct {
	Industry    string     `json:"industry,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// GetMetadata decodes the tenant's metadata document. A missing or empty
// document decodes to the zero value.
func (t *Tenant) GetMetadata() (TenantMetadata, error) {
	var meta TenantMetadata
	if len(t.Metadata) == 0 {
		return meta, nil
	}
	err := json.Unmarshal(t.Metadata, &meta)
	return meta, err
}

// SetMetadata encodes and stores the metadata document on the tenant.
func (t *Tenant) SetMetadata(meta TenantMetadata) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	t.Metadata = raw
	return nil
}
