package models

// Plan represents the subscription plan of a tenant
type Plan string

const (
	PlanTrial        Plan = "trial"
	PlanStarter      Plan = "starter"
	PlanProfessional Plan = "professional"
	PlanEnterprise   Plan = "enterprise"
)

// IsValid checks if the Plan is valid
func (p Plan) IsValid() bool {
	switch p {
	case PlanTrial, PlanStarter, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

// BusinessType is the top-level classification of a tenant's operations
type BusinessType string

const (
	BusinessTypePrintingPress BusinessType = "printing_press"
	BusinessTypeShop          BusinessType = "shop"
	BusinessTypePharmacy      BusinessType = "pharmacy"
)

// IsValid checks if the BusinessType is valid
func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypePrintingPress, BusinessTypeShop, BusinessTypePharmacy:
		return true
	}
	return false
}

// TenantStatus represents the lifecycle state of a tenant
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusCancelled TenantStatus = "cancelled"
)

// MembershipRole represents the role of a user within a tenant
type MembershipRole string

const (
	MembershipRoleOwner   MembershipRole = "owner"
	MembershipRoleAdmin   MembershipRole = "admin"
	MembershipRoleManager MembershipRole = "manager"
	MembershipRoleStaff   MembershipRole = "staff"
)

// MembershipStatus represents the state of a user's membership in a tenant
type MembershipStatus string

const (
	MembershipStatusActive  MembershipStatus = "active"
	MembershipStatusInvited MembershipStatus = "invited"
)

// Setting keys seeded at provisioning time
const (
	SettingKeyOrganization = "organization"
	SettingKeySubscription = "subscription"
	SettingKeyPayroll      = "payroll"
)
