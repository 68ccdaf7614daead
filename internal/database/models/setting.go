package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Setting is a tenant-scoped key/value document. Keys are unique per tenant;
// provisioning seeds the organization, subscription and payroll keys.
type Setting struct {
	BaseModel
	TenantID    uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_settings_tenant_key" validate:"required"`
	Key         string          `json:"key" gorm:"not null;size:100;uniqueIndex:idx_settings_tenant_key" validate:"required,max=100"`
	Value       json.RawMessage `json:"value" gorm:"type:jsonb"`
	Description string          `json:"description" gorm:"size:255"`
}

// TableName returns the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
