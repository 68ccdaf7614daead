package models

import (
	"time"

	"github.com/google/uuid"
)

// UserTenant is the membership bridge between users and tenants. Exactly one
// membership per (tenant, user) pair; the first tenant a user signs up with
// is marked as the default.
type UserTenant struct {
	BaseModel
	TenantID  uuid.UUID        `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_tenants_pair" validate:"required"`
	UserID    uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_tenants_pair" validate:"required"`
	Role      MembershipRole   `json:"role" gorm:"type:varchar(50);not null;default:'staff'"`
	Status    MembershipStatus `json:"status" gorm:"type:varchar(50);not null;default:'active'"`
	IsDefault bool             `json:"is_default" gorm:"default:false"`
	InvitedBy *uuid.UUID       `json:"invited_by,omitempty" gorm:"type:uuid"`
	InvitedAt *time.Time       `json:"invited_at,omitempty"`
	JoinedAt  *time.Time       `json:"joined_at,omitempty"`

	// Relationships
	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserTenant
func (UserTenant) TableName() string {
	return "user_tenants"
}
