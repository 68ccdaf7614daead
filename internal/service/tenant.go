package service

import (
	"errors"
	"fmt"

	apperrors "business-platform-backend/internal/errors"
	"business-platform-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantService exposes read views of tenants and memberships
type TenantService struct {
	tenantRepo     repository.TenantRepositoryInterface
	membershipRepo repository.UserTenantRepositoryInterface
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repository.TenantRepositoryInterface, membershipRepo repository.UserTenantRepositoryInterface) *TenantService {
	return &TenantService{tenantRepo: tenantRepo, membershipRepo: membershipRepo}
}

// GetProfile returns the reduced view of a tenant
func (s *TenantService) GetProfile(tenantID uuid.UUID) (*TenantProfile, error) {
	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	return &TenantProfile{
		ID:           tenant.ID,
		Name:         tenant.Name,
		BusinessType: tenant.BusinessType,
		Metadata:     tenant.Metadata,
	}, nil
}

// ListMemberships returns a user's memberships, default tenant first
func (s *TenantService) ListMemberships(userID uuid.UUID) ([]MembershipResponse, error) {
	memberships, err := s.membershipRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	return toMembershipResponses(memberships), nil
}
