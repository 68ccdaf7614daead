package models

import (
	"github.com/google/uuid"
)

// InventoryCategory groups a tenant's inventory items. (tenant_id, name) is
// unique, which makes default-category seeding idempotent and acts as the
// backstop for racing find-or-create calls.
type InventoryCategory struct {
	BaseModel
	TenantID    uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_inventory_categories_tenant_name" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_inventory_categories_tenant_name" validate:"required,max=100"`
	Description string    `json:"description" gorm:"size:255"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for InventoryCategory
func (InventoryCategory) TableName() string {
	return "inventory_categories"
}
