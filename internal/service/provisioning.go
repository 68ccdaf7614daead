package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"business-platform-backend/internal/auth"
	"business-platform-backend/internal/database/models"
	apperrors "business-platform-backend/internal/errors"
	"business-platform-backend/internal/logger"
	"business-platform-backend/internal/repository"
	"business-platform-backend/internal/slug"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxSlugAttempts caps the unique-slug loop. The unique constraint on the
// slug column is the final backstop under concurrency.
const maxSlugAttempts = 10000

// slugConflictRetries bounds how many times a signup transaction is restarted
// after losing a slug race at insert time.
const slugConflictRetries = 3

const defaultCompanyName = "My Workspace"

// TokenIssuer mints authentication tokens for newly provisioned users
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

// ProvisioningService orchestrates tenant signup: duplicate-email pre-check,
// transactional creation of tenant, owner user, membership and settings,
// best-effort category seeding after commit, and token issuance.
type ProvisioningService struct {
	txm            repository.TxManagerInterface
	tenantRepo     repository.TenantRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	membershipRepo repository.UserTenantRepositoryInterface
	settingRepo    repository.SettingRepositoryInterface
	seeder         SeederServiceInterface
	tokens         TokenIssuer
	validator      *validator.Validate
	log            *logger.Logger
}

// NewProvisioningService creates a new provisioning service
func NewProvisioningService(
	txm repository.TxManagerInterface,
	tenantRepo repository.TenantRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	membershipRepo repository.UserTenantRepositoryInterface,
	settingRepo repository.SettingRepositoryInterface,
	seeder SeederServiceInterface,
	tokens TokenIssuer,
	validator *validator.Validate,
) *ProvisioningService {
	return &ProvisioningService{
		txm:            txm,
		tenantRepo:     tenantRepo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		settingRepo:    settingRepo,
		seeder:         seeder,
		tokens:         tokens,
		validator:      validator,
		log:            logger.New().WithField("component", "provisioning"),
	}
}

// SignupRequest represents the tenant signup payload
type SignupRequest struct {
	CompanyName    string          `json:"companyName" validate:"omitempty,max=255"`
	CompanyEmail   string          `json:"companyEmail" validate:"omitempty,email"`
	CompanyPhone   string          `json:"companyPhone" validate:"omitempty,max=50"`
	CompanyWebsite string          `json:"companyWebsite" validate:"omitempty,max=255"`
	AdminName      string          `json:"adminName" validate:"max=200"`
	AdminEmail     string          `json:"adminEmail" validate:"omitempty,email"`
	Password       string          `json:"password" validate:"omitempty,min=6"`
	Plan           string          `json:"plan" validate:"omitempty,oneof=trial starter professional enterprise"`
	BusinessType   string          `json:"businessType" validate:"omitempty,oneof=printing_press shop pharmacy"`
	ShopType       string          `json:"shopType" validate:"omitempty,max=50"`
	BusinessInfo   json.RawMessage `json:"businessInfo,omitempty"`
}

// UserResponse is the reduced user view returned after signup
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// TenantSummary is the tenant view embedded in membership responses
type TenantSummary struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Slug         string              `json:"slug"`
	Plan         models.Plan         `json:"plan"`
	BusinessType models.BusinessType `json:"business_type"`
	Status       models.TenantStatus `json:"status"`
}

// MembershipResponse is the membership view returned to clients
type MembershipResponse struct {
	ID        uuid.UUID               `json:"id"`
	TenantID  uuid.UUID               `json:"tenant_id"`
	Role      models.MembershipRole   `json:"role"`
	Status    models.MembershipStatus `json:"status"`
	IsDefault bool                    `json:"is_default"`
	JoinedAt  *time.Time              `json:"joined_at,omitempty"`
	Tenant    TenantSummary           `json:"tenant"`
}

// SignupResponse bundles everything a freshly provisioned account needs
type SignupResponse struct {
	User            UserResponse         `json:"user"`
	Token           string               `json:"token"`
	Memberships     []MembershipResponse `json:"memberships"`
	DefaultTenantID uuid.UUID            `json:"defaultTenantId"`
}

// Signup provisions a new tenant with its owner account. Steps inside the
// transaction are all-or-nothing; category seeding runs after commit and its
// failure never fails the signup.
func (s *ProvisioningService) Signup(req *SignupRequest) (*SignupResponse, error) {
	if strings.TrimSpace(req.AdminName) == "" ||
		strings.TrimSpace(req.AdminEmail) == "" ||
		req.Password == "" {
		return nil, apperrors.NewValidationError("", "Account owner name, email, and password are required")
	}
	// Validation and the uniqueness checks both operate on the canonical
	// address, so "A@X.com " and "a@x.com" are the same account.
	email := normalizeEmail(req.AdminEmail)
	req.AdminEmail = email

	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Fail fast before opening a transaction.
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		companyName = defaultCompanyName
	}
	plan := models.Plan(req.Plan)
	if req.Plan == "" {
		plan = models.PlanTrial
	}
	businessType := models.BusinessType(req.BusinessType)
	if req.BusinessType == "" {
		businessType = models.BusinessTypePrintingPress
	}
	shopType := ""
	if businessType == models.BusinessTypeShop {
		shopType = req.ShopType
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var tenant *models.Tenant
	var user *models.User

	// A concurrent signup with the same company name can win the slug race
	// between our in-transaction check and the insert; restart with a fresh
	// candidate in that case. A duplicate email at insert time means a
	// concurrent signup registered the same address after our pre-check.
	for attempt := 0; ; attempt++ {
		tenant, user, err = s.provisionTx(req, companyName, email, passwordHash, plan, businessType, shopType)
		if err == nil {
			break
		}
		if repository.IsUniqueViolation(err) {
			if strings.Contains(repository.UniqueViolationConstraint(err), "email") {
				return nil, apperrors.ErrUserExists
			}
			if attempt < slugConflictRetries {
				s.log.Warnf("signup transaction lost a slug race, retrying: %v", err)
				continue
			}
		}
		return nil, err
	}

	// Post-commit, best-effort: the tenant is already committed and usable
	// without its starter categories.
	if _, err := s.seeder.SeedDefaultCategories(tenant.ID, businessType, shopType); err != nil {
		s.log.WithField("tenant_id", tenant.ID).Errorf("default category seeding failed: %v", err)
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}

	memberships, err := s.membershipRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}

	return &SignupResponse{
		User:            toUserResponse(user),
		Token:           token,
		Memberships:     toMembershipResponses(memberships),
		DefaultTenantID: tenant.ID,
	}, nil
}

// provisionTx runs the transactional phase of signup: slug allocation and
// creation of tenant, owner user, membership and the three default settings.
func (s *ProvisioningService) provisionTx(
	req *SignupRequest,
	companyName, email, passwordHash string,
	plan models.Plan,
	businessType models.BusinessType,
	shopType string,
) (*models.Tenant, *models.User, error) {
	var tenant models.Tenant
	var user models.User

	err := s.txm.Transaction(func(tx *gorm.DB) error {
		tenantSlug, err := s.generateUniqueSlug(tx, companyName)
		if err != nil {
			return err
		}

		now := time.Now()
		var trialEndsAt *time.Time
		if plan == models.PlanTrial {
			t := now.AddDate(0, 1, 0)
			trialEndsAt = &t
		}

		meta := models.TenantMetadata{
			Website:      optionalString(req.CompanyWebsite),
			Email:        optionalString(req.CompanyEmail),
			Phone:        optionalString(req.CompanyPhone),
			SignupSource: "self_service",
		}
		if shopType != "" {
			meta.ShopType = shopType
		}
		if len(req.BusinessInfo) > 0 {
			meta.BusinessInfo = req.BusinessInfo
		}

		tenant = models.Tenant{
			Name:         companyName,
			Slug:         tenantSlug,
			Plan:         plan,
			BusinessType: businessType,
			Status:       models.TenantStatusActive,
			TrialEndsAt:  trialEndsAt,
		}
		if err := tenant.SetMetadata(meta); err != nil {
			return fmt.Errorf("failed to encode tenant metadata: %w", err)
		}
		if err := s.tenantRepo.CreateTx(tx, &tenant); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		user = models.User{
			Name:         strings.TrimSpace(req.AdminName),
			Email:        email,
			PasswordHash: passwordHash,
			Role:         "admin",
		}
		if err := s.userRepo.CreateTx(tx, &user); err != nil {
			return fmt.Errorf("failed to create owner user: %w", err)
		}

		membership := models.UserTenant{
			TenantID:  tenant.ID,
			UserID:    user.ID,
			Role:      models.MembershipRoleOwner,
			Status:    models.MembershipStatusActive,
			IsDefault: true,
			InvitedBy: nil,
			InvitedAt: &now,
			JoinedAt:  &now,
		}
		if err := s.membershipRepo.CreateTx(tx, &membership); err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}

		settings, err := defaultSettings(&tenant, req, plan, trialEndsAt)
		if err != nil {
			return err
		}
		if err := s.settingRepo.BulkCreateTx(tx, settings); err != nil {
			return fmt.Errorf("failed to create default settings: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &tenant, &user, nil
}

// generateUniqueSlug allocates an unused slug inside the signup transaction,
// appending -1, -2, ... to the base until a free candidate is found.
func (s *ProvisioningService) generateUniqueSlug(tx *gorm.DB, name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		taken, err := s.tenantRepo.SlugExistsTx(tx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = slug.WithSuffix(base, attempt)
	}
	return "", apperrors.ErrSlugExhausted
}

// defaultSettings builds the three settings rows seeded for every new tenant.
func defaultSettings(tenant *models.Tenant, req *SignupRequest, plan models.Plan, trialEndsAt *time.Time) ([]models.Setting, error) {
	organization := map[string]interface{}{
		"name":          tenant.Name,
		"legalName":     tenant.Name,
		"email":         req.CompanyEmail,
		"phone":         req.CompanyPhone,
		"website":       req.CompanyWebsite,
		"address":       map[string]interface{}{},
		"tax":           map[string]interface{}{},
		"invoiceFooter": "Thank you for your business",
	}

	subscriptionStatus := "active"
	if plan == models.PlanTrial {
		subscriptionStatus = "trialing"
	}
	subscription := map[string]interface{}{
		"plan":          plan,
		"status":        subscriptionStatus,
		"trialEndsAt":   trialEndsAt,
		"paymentMethod": nil,
		"seats":         1,
	}

	payroll := map[string]interface{}{
		"payeRate":  0.10,
		"ssnitRate": 0.135,
		"currency":  "GHS",
		"payCycle":  "monthly",
	}

	values := []struct {
		key         string
		value       map[string]interface{}
		description string
	}{
		{models.SettingKeyOrganization, organization, "Company profile and invoicing details"},
		{models.SettingKeySubscription, subscription, "Subscription plan and billing state"},
		{models.SettingKeyPayroll, payroll, "Payroll statutory rates and cycle"},
	}

	settings := make([]models.Setting, 0, len(values))
	for _, v := range values {
		raw, err := json.Marshal(v.value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s setting: %w", v.key, err)
		}
		settings = append(settings, models.Setting{
			TenantID:    tenant.ID,
			Key:         v.key,
			Value:       raw,
			Description: v.description,
		})
	}
	return settings, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

func toMembershipResponses(memberships []models.UserTenant) []MembershipResponse {
	out := make([]MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, MembershipResponse{
			ID:        m.ID,
			TenantID:  m.TenantID,
			Role:      m.Role,
			Status:    m.Status,
			IsDefault: m.IsDefault,
			JoinedAt:  m.JoinedAt,
			Tenant: TenantSummary{
				ID:           m.Tenant.ID,
				Name:         m.Tenant.Name,
				Slug:         m.Tenant.Slug,
				Plan:         m.Tenant.Plan,
				BusinessType: m.Tenant.BusinessType,
				Status:       m.Tenant.Status,
			},
		})
	}
	return out
}
